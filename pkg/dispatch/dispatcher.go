// Package dispatch runs distance models over large inputs. It picks between
// the model's serial path and a chunked parallel one, orients two-array
// matrices for better parallel granularity and computes self-comparison
// matrices from one triangle.
package dispatch

import (
	"context"
	"errors"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/concurrent"
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"

	"go.uber.org/zap"
)

type Dispatcher struct {
	model    geodistance.Model
	settings config.Settings
	log      *zap.Logger
}

func NewDispatcher(model geodistance.Model, settings config.Settings, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		model:    model,
		settings: settings.OrDefault(),
		log:      log,
	}
}

func (d *Dispatcher) Model() geodistance.Model {
	return d.model
}

func (d *Dispatcher) Settings() config.Settings {
	return d.settings
}

func (d *Dispatcher) parallel(cells int) bool {
	return cells >= d.settings.SerialThreshold()
}

func validate(arrays ...geo.Coordinates) error {
	for _, cs := range arrays {
		if err := cs.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) warnUnconverged(op string, conv geodistance.Convergence) {
	if conv.Converged() {
		return
	}
	d.log.Warn("some cells did not converge, keeping last iterate",
		zap.String("op", op),
		zap.String("model", d.model.Name()),
		zap.Int("unconverged", conv.Unconverged),
		zap.Int("cells", conv.Cells),
		zap.Int("max_iterations", d.settings.MaxIterations()))
}

type radianRows struct {
	lat, lng []float64
}

func toRadians(cs geo.Coordinates) radianRows {
	lat, lng := cs.Radians()
	return radianRows{lat: lat, lng: lng}
}

type chunkDistances struct {
	values []float64
	conv   geodistance.Convergence
}

// DistanceFromPoint returns the distance from src to every destination, in
// destination order. Inputs of at least SerialThreshold destinations are split
// into ceil(n/workers) sized chunks computed concurrently.
func (d *Dispatcher) DistanceFromPoint(ctx context.Context, src geo.LatLng, dst geo.Coordinates) (geodistance.Distances, error) {
	if err := src.Validate(); err != nil {
		return geodistance.Distances{}, err
	}
	if err := validate(dst); err != nil {
		return geodistance.Distances{}, err
	}

	if !d.parallel(len(dst)) {
		res := d.model.DistanceFromPoint(src, dst, d.settings)
		d.warnUnconverged("distance_from_point", res.Convergence)
		return res, nil
	}

	d.log.Debug("parallel distance from point",
		zap.Int("destinations", len(dst)),
		zap.Int("workers", d.settings.Workers()),
		zap.Int("chunk_size", concurrent.ChunkSize(len(dst), d.settings.Workers())))

	srcLat, srcLng := src.Radians()
	rad := toRadians(dst)
	parts, err := concurrent.MapChunks(ctx, len(dst), d.settings.Workers(),
		func(_ context.Context, c concurrent.Chunk) (chunkDistances, error) {
			values, conv := d.model.DistanceFromPointRad(srcLat, srcLng, rad.lat[c.Start:c.End], rad.lng[c.Start:c.End], d.settings)
			return chunkDistances{values: values, conv: conv}, nil
		})
	if err != nil {
		return geodistance.Distances{}, err
	}

	res := geodistance.Distances{Values: make([]float64, 0, len(dst))}
	scale := d.model.Scale(d.settings)
	for _, part := range parts {
		for _, v := range part.values {
			res.Values = append(res.Values, scaled(v, scale))
		}
		res.Convergence = res.Convergence.Merge(part.conv)
	}
	d.warnUnconverged("distance_from_point", res.Convergence)
	return res, nil
}

func scaled(v, scale float64) float64 {
	if geodistance.IsMissing(v) {
		return geodistance.Missing
	}
	return v * scale
}

// Distance returns the len(src) x len(dst) matrix. The larger array is used as
// the parallel row dimension and the result is transposed back when needed, so
// rows always follow src.
func (d *Dispatcher) Distance(ctx context.Context, src, dst geo.Coordinates) (geodistance.Matrix, error) {
	if err := validate(src, dst); err != nil {
		return geodistance.Matrix{}, err
	}

	rows, cols := src, dst
	swapped := len(dst) > len(src)
	if swapped {
		rows, cols = dst, src
	}

	m, err := d.rowsAgainst(ctx, rows, cols)
	if err != nil {
		return geodistance.Matrix{}, err
	}
	if swapped {
		m = m.Transpose()
	}
	d.warnUnconverged("distance", m.Convergence)
	return m, nil
}

func (d *Dispatcher) rowsAgainst(ctx context.Context, rows, cols geo.Coordinates) (geodistance.Matrix, error) {
	if !d.parallel(len(rows) * len(cols)) {
		return d.model.Distance(rows, cols, d.settings), nil
	}

	d.log.Debug("parallel distance matrix",
		zap.Int("rows", len(rows)),
		zap.Int("cols", len(cols)),
		zap.Int("workers", d.settings.Workers()))

	r, c := toRadians(rows), toRadians(cols)
	out := geodistance.NewMatrix(len(rows), len(cols))
	convs, err := concurrent.MapChunks(ctx, len(rows), d.settings.Workers(),
		func(ctx context.Context, ch concurrent.Chunk) (geodistance.Convergence, error) {
			conv := geodistance.Convergence{}
			for i := ch.Start; i < ch.End; i++ {
				if err := ctx.Err(); err != nil {
					return conv, err
				}
				values, rowConv := d.model.DistanceFromPointRad(r.lat[i], r.lng[i], c.lat, c.lng, d.settings)
				// chunks own disjoint row ranges of out
				copy(out.Row(i), values)
				conv = conv.Merge(rowConv)
			}
			return conv, nil
		})
	if err != nil {
		return geodistance.Matrix{}, err
	}

	for _, conv := range convs {
		out.Convergence = out.Convergence.Merge(conv)
	}
	out.Scale(d.model.Scale(d.settings))
	return out, nil
}

// DistanceWithinArray is Distance(cs, cs) computed from the strictly lower
// triangle only. The diagonal is 0 and the upper triangle mirrors the lower.
func (d *Dispatcher) DistanceWithinArray(ctx context.Context, cs geo.Coordinates) (geodistance.Matrix, error) {
	if err := validate(cs); err != nil {
		return geodistance.Matrix{}, err
	}

	n := len(cs)
	rad := toRadians(cs)
	lowerRow := func(i int) chunkDistances {
		values, conv := d.model.DistanceFromPointRad(rad.lat[i], rad.lng[i], rad.lat[:i], rad.lng[:i], d.settings)
		return chunkDistances{values: values, conv: conv}
	}

	var lower []chunkDistances
	if d.parallel(n * (n - 1) / 2) {
		d.log.Debug("parallel symmetric distance matrix",
			zap.Int("size", n),
			zap.Int("workers", d.settings.Workers()))
		var err error
		lower, err = concurrent.MapIndices(ctx, n, d.settings.Workers(), lowerRow)
		if err != nil {
			return geodistance.Matrix{}, err
		}
	} else {
		lower = make([]chunkDistances, n)
		for i := range lower {
			if err := ctx.Err(); err != nil {
				return geodistance.Matrix{}, err
			}
			lower[i] = lowerRow(i)
		}
	}

	scale := d.model.Scale(d.settings)
	out := geodistance.NewMatrix(n, n)
	for i, row := range lower {
		for j, v := range row.values {
			v = scaled(v, scale)
			out.Set(i, j, v)
			out.Set(j, i, v)
		}
		out.Convergence = out.Convergence.Merge(row.conv)
	}
	d.warnUnconverged("distance_within_array", out.Convergence)
	return out, nil
}

// WithinDistanceOfPoint reports, per destination, whether it lies within its
// threshold of src. threshold is either one value or one per destination.
func (d *Dispatcher) WithinDistanceOfPoint(ctx context.Context, src geo.LatLng, dst geo.Coordinates, threshold geodistance.RowParam[float64]) (geodistance.Proximity, error) {
	if err := geodistance.ValidateThreshold(threshold, len(dst)); err != nil {
		return geodistance.Proximity{}, err
	}
	dist, err := d.DistanceFromPoint(ctx, src, dst)
	if err != nil {
		return geodistance.Proximity{}, err
	}
	return dist.WithinDistance(threshold)
}

func (d *Dispatcher) WithinDistance(ctx context.Context, src, dst geo.Coordinates, threshold float64) (geodistance.BoolMatrix, error) {
	if err := geodistance.ValidateThreshold(geodistance.Scalar(threshold), 0); err != nil {
		return geodistance.BoolMatrix{}, err
	}
	m, err := d.Distance(ctx, src, dst)
	if err != nil {
		return geodistance.BoolMatrix{}, err
	}
	return m.WithinDistance(threshold)
}

func (d *Dispatcher) WithinDistanceAmongArray(ctx context.Context, cs geo.Coordinates, threshold float64) (geodistance.BoolMatrix, error) {
	if err := geodistance.ValidateThreshold(geodistance.Scalar(threshold), 0); err != nil {
		return geodistance.BoolMatrix{}, err
	}
	m, err := d.DistanceWithinArray(ctx, cs)
	if err != nil {
		return geodistance.BoolMatrix{}, err
	}
	return m.WithinDistance(threshold)
}

// IndicesWithinDistanceOfPoint lists, in ascending order, the destinations
// within threshold of src.
func (d *Dispatcher) IndicesWithinDistanceOfPoint(ctx context.Context, src geo.LatLng, dst geo.Coordinates, threshold geodistance.RowParam[float64]) ([]int, error) {
	p, err := d.WithinDistanceOfPoint(ctx, src, dst, threshold)
	if err != nil {
		return nil, err
	}
	return p.Indices(), nil
}

func (d *Dispatcher) IndicesWithinDistance(ctx context.Context, src, dst geo.Coordinates, threshold float64) ([][]int, error) {
	b, err := d.WithinDistance(ctx, src, dst, threshold)
	if err != nil {
		return nil, err
	}
	return b.Indices(), nil
}

// IndicesWithinDistanceAmongArray lists, for every coordinate, the
// coordinates of the same array within threshold of it, itself included.
func (d *Dispatcher) IndicesWithinDistanceAmongArray(ctx context.Context, cs geo.Coordinates, threshold float64) ([][]int, error) {
	b, err := d.WithinDistanceAmongArray(ctx, cs, threshold)
	if err != nil {
		return nil, err
	}
	return b.Indices(), nil
}

// Displace moves every source row by its distance along its bearing. With the
// Vincenty model, rows that did not converge are still returned alongside an
// error wrapping pkg.ErrConvergence.
func (d *Dispatcher) Displace(ctx context.Context, src geo.Coordinates, distance, bearing geodistance.RowParam[float64]) (geodistance.Displaced, error) {
	if err := validate(src); err != nil {
		return geodistance.Displaced{}, err
	}
	if err := geodistance.ValidateDisplacement(len(src), distance, bearing); err != nil {
		return geodistance.Displaced{}, err
	}

	if !d.parallel(len(src)) {
		res, err := d.model.Displace(src, distance, bearing, d.settings)
		if err != nil && !errors.Is(err, pkg.ErrConvergence) {
			return geodistance.Displaced{}, err
		}
		return res, err
	}

	parts, err := concurrent.MapChunks(ctx, len(src), d.settings.Workers(),
		func(_ context.Context, c concurrent.Chunk) (geodistance.Displaced, error) {
			res, err := d.model.Displace(src[c.Start:c.End], distance.Slice(c.Start, c.End), bearing.Slice(c.Start, c.End), d.settings)
			if err != nil && !errors.Is(err, pkg.ErrConvergence) {
				return geodistance.Displaced{}, err
			}
			return res, nil
		})
	if err != nil {
		return geodistance.Displaced{}, err
	}

	res := geodistance.Displaced{Coordinates: make(geo.Coordinates, 0, len(src))}
	for _, part := range parts {
		res.Coordinates = append(res.Coordinates, part.Coordinates...)
		res.Convergence = res.Convergence.Merge(part.Convergence)
	}
	if !res.Convergence.Converged() {
		return res, pkg.WrapErrorf(nil, pkg.ErrConvergence,
			"%d of %d displacements did not converge within %d iterations",
			res.Convergence.Unconverged, res.Convergence.Cells, d.settings.MaxIterations())
	}
	return res, nil
}
