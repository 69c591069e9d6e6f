package geodistance

import (
	"math"
	"strconv"

	"github.com/lintang-b-s/geodistances/pkg"

	"golang.org/x/exp/constraints"
)

// RowParam is a per-call parameter (threshold, distance, bearing) given either
// once for every row or once per row.
type RowParam[T constraints.Float] struct {
	scalar   T
	values   []T
	isPerRow bool
}

func Scalar[T constraints.Float](v T) RowParam[T] {
	return RowParam[T]{scalar: v}
}

func PerRow[T constraints.Float](vs []T) RowParam[T] {
	return RowParam[T]{values: vs, isPerRow: true}
}

func (p RowParam[T]) IsPerRow() bool {
	return p.isPerRow
}

// At returns the value for row i. Call Validate first for per-row params.
func (p RowParam[T]) At(i int) T {
	if p.isPerRow {
		return p.values[i]
	}
	return p.scalar
}

// Slice restricts a per-row param to rows [start, end). Scalars are returned as is.
func (p RowParam[T]) Slice(start, end int) RowParam[T] {
	if !p.isPerRow {
		return p
	}
	return PerRow(p.values[start:end])
}

func (p RowParam[T]) each(fn func(i int, v T) error) error {
	if !p.isPerRow {
		return fn(-1, p.scalar)
	}
	for i, v := range p.values {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that a per-row param has exactly n values and that every
// value is finite.
func (p RowParam[T]) Validate(n int, name string) error {
	if p.isPerRow && len(p.values) != n {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "%s has %d values but %d rows were given", name, len(p.values), n)
	}
	return p.each(func(i int, v T) error {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "%s%s must be finite, yet %v provided", name, rowSuffix(i), f)
		}
		return nil
	})
}

func (p RowParam[T]) NonNegative(name string) error {
	return p.each(func(i int, v T) error {
		if !(float64(v) >= 0) {
			return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "%s%s must not be negative, yet %v provided", name, rowSuffix(i), float64(v))
		}
		return nil
	})
}

func rowSuffix(i int) string {
	if i < 0 {
		return ""
	}
	return " at row " + strconv.Itoa(i)
}
