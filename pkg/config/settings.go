// Package config holds the calculation settings shared by every distance
// model and the dispatcher.
package config

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"

	"github.com/lintang-b-s/geodistances/pkg"

	"github.com/cespare/xxhash/v2"
)

const (
	// Radius used by models that treat the earth as a sphere, in km.
	SphericalRadius = 6371.0

	EllipsoidWGS84A = 6378.137
	EllipsoidWGS84B = 6356.752314245
	EllipsoidWGS84F = 1. / 298.257223563

	MaxIterations = 1000
	Tolerance     = 1e-12

	// Point-to-array calls with at least this many destinations run in parallel.
	SerialThreshold = 8192

	DefaultWorkers = 4
)

// MachineEpsilon is the float64 machine epsilon, 2^-52.
var MachineEpsilon = math.Nextafter(1, 2) - 1

// Settings is the immutable bundle of numeric constants and parallelism
// parameters. The zero value is not usable; build one with NewSettings or
// DefaultSettings.
type Settings struct {
	sphericalRadius float64
	ellipsoidA      float64
	ellipsoidB      float64
	ellipsoidF      float64
	tolerance       float64
	maxIterations   int
	epsilon         float64
	serialThreshold int
	workers         int
}

func WorkersCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return DefaultWorkers
	}
	return n
}

// DefaultSettings returns WGS84 constants, a 6371 km sphere and one worker per logical CPU.
func DefaultSettings() Settings {
	return Settings{
		sphericalRadius: SphericalRadius,
		ellipsoidA:      EllipsoidWGS84A,
		ellipsoidB:      EllipsoidWGS84B,
		ellipsoidF:      EllipsoidWGS84F,
		tolerance:       Tolerance,
		maxIterations:   MaxIterations,
		epsilon:         MachineEpsilon,
		serialThreshold: SerialThreshold,
		workers:         WorkersCount(),
	}
}

type Option func(*Settings)

func WithSphericalRadius(r float64) Option {
	return func(s *Settings) {
		s.sphericalRadius = r
	}
}

func WithEllipsoid(a, b, f float64) Option {
	return func(s *Settings) {
		s.ellipsoidA = a
		s.ellipsoidB = b
		s.ellipsoidF = f
	}
}

func WithTolerance(tolerance float64) Option {
	return func(s *Settings) {
		s.tolerance = tolerance
	}
}

func WithMaxIterations(n int) Option {
	return func(s *Settings) {
		s.maxIterations = n
	}
}

// WithEpsilon sets epsilon; values below machine epsilon are raised to it.
func WithEpsilon(eps float64) Option {
	return func(s *Settings) {
		s.epsilon = eps
	}
}

func WithSerialThreshold(n int) Option {
	return func(s *Settings) {
		s.serialThreshold = n
	}
}

// WithWorkers sets the worker count; values below 1 are clamped to 1.
func WithWorkers(n int) Option {
	return func(s *Settings) {
		s.workers = n
	}
}

// NewSettings applies opts over DefaultSettings. It fails with
// pkg.ErrConfiguration on a non-positive or non-finite tolerance, fewer than
// one iteration, or non-positive radius/axes.
func NewSettings(opts ...Option) (Settings, error) {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if !(s.tolerance > 0) || math.IsInf(s.tolerance, 0) {
		return Settings{}, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "tolerance must be positive, yet %v provided", s.tolerance)
	}
	if s.maxIterations < 1 {
		return Settings{}, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "max iterations must be at least 1, yet %d provided", s.maxIterations)
	}
	for _, axis := range []struct {
		name string
		v    float64
	}{
		{"spherical radius", s.sphericalRadius},
		{"ellipsoid a", s.ellipsoidA},
		{"ellipsoid b", s.ellipsoidB},
	} {
		if !(axis.v > 0) || math.IsInf(axis.v, 0) {
			return Settings{}, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "%s must be positive and finite, yet %v provided", axis.name, axis.v)
		}
	}
	if math.IsNaN(s.ellipsoidF) || s.ellipsoidF < 0 || s.ellipsoidF >= 1 {
		return Settings{}, pkg.WrapErrorf(nil, pkg.ErrConfiguration, "ellipsoid flattening must be in [0, 1), yet %v provided", s.ellipsoidF)
	}

	if !(s.epsilon >= MachineEpsilon) {
		s.epsilon = MachineEpsilon
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.serialThreshold < 0 {
		s.serialThreshold = 0
	}
	return s, nil
}

// OrDefault returns DefaultSettings when s is the zero value, s otherwise.
func (s Settings) OrDefault() Settings {
	if s == (Settings{}) {
		return DefaultSettings()
	}
	return s
}

func (s Settings) SphericalRadius() float64 { return s.sphericalRadius }
func (s Settings) EllipsoidA() float64      { return s.ellipsoidA }
func (s Settings) EllipsoidB() float64      { return s.ellipsoidB }
func (s Settings) EllipsoidF() float64      { return s.ellipsoidF }
func (s Settings) Tolerance() float64       { return s.tolerance }
func (s Settings) MaxIterations() int       { return s.maxIterations }
func (s Settings) Epsilon() float64         { return s.epsilon }
func (s Settings) SerialThreshold() int     { return s.serialThreshold }
func (s Settings) Workers() int             { return s.workers }

// Params lists every setting as name and formatted value, in a fixed order.
func (s Settings) Params() [][2]string {
	return [][2]string{
		{"spherical_radius", fmt.Sprint(s.sphericalRadius)},
		{"ellipsoid_a", fmt.Sprint(s.ellipsoidA)},
		{"ellipsoid_b", fmt.Sprint(s.ellipsoidB)},
		{"ellipsoid_f", fmt.Sprint(s.ellipsoidF)},
		{"tolerance", fmt.Sprint(s.tolerance)},
		{"max_iterations", fmt.Sprint(s.maxIterations)},
		{"epsilon", fmt.Sprint(s.epsilon)},
		{"serial_threshold", fmt.Sprint(s.serialThreshold)},
		{"workers", fmt.Sprint(s.workers)},
	}
}

func (s Settings) String() string {
	params := make([]string, 0, 9)
	for _, p := range s.Params() {
		params = append(params, p[0]+"="+p[1])
	}
	return "Settings(" + strings.Join(params, ", ") + ")"
}

// Explain writes one aligned line per parameter to w.
//
//	Settings:
//	  - spherical_radius    =                 6371
//	  - ellipsoid_a         =             6378.137
//	  ...
func (s Settings) Explain(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Settings:"); err != nil {
		return err
	}
	for _, p := range s.Params() {
		if _, err := fmt.Fprintf(w, "  - %-20s= %22s\n", p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

// Hash is stable across processes for equal settings.
func (s Settings) Hash() uint64 {
	return xxhash.Sum64String(s.String())
}
