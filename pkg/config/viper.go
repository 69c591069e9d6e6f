package config

import (
	"github.com/spf13/viper"
)

const (
	KeySphericalRadius = "GEO_SPHERICAL_RADIUS"
	KeyEllipsoidA      = "GEO_ELLIPSOID_A"
	KeyEllipsoidB      = "GEO_ELLIPSOID_B"
	KeyEllipsoidF      = "GEO_ELLIPSOID_F"
	KeyTolerance       = "GEO_TOLERANCE"
	KeyMaxIterations   = "GEO_MAX_ITERATIONS"
	KeyEpsilon         = "GEO_EPSILON"
	KeySerialThreshold = "GEO_SERIAL_THRESHOLD"
	KeyWorkers         = "GEO_WORKERS"
	KeyModel           = "GEO_MODEL"
)

// SetDefaults registers the default value of every settings key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySphericalRadius, SphericalRadius)
	v.SetDefault(KeyEllipsoidA, EllipsoidWGS84A)
	v.SetDefault(KeyEllipsoidB, EllipsoidWGS84B)
	v.SetDefault(KeyEllipsoidF, EllipsoidWGS84F)
	v.SetDefault(KeyTolerance, Tolerance)
	v.SetDefault(KeyMaxIterations, MaxIterations)
	v.SetDefault(KeyEpsilon, MachineEpsilon)
	v.SetDefault(KeySerialThreshold, SerialThreshold)
	v.SetDefault(KeyWorkers, WorkersCount())
	v.SetDefault(KeyModel, "haversine")
}

// FromViper builds Settings from the GEO_* keys of v, with the same
// validation as NewSettings.
func FromViper(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	return NewSettings(
		WithSphericalRadius(v.GetFloat64(KeySphericalRadius)),
		WithEllipsoid(
			v.GetFloat64(KeyEllipsoidA),
			v.GetFloat64(KeyEllipsoidB),
			v.GetFloat64(KeyEllipsoidF),
		),
		WithTolerance(v.GetFloat64(KeyTolerance)),
		WithMaxIterations(v.GetInt(KeyMaxIterations)),
		WithEpsilon(v.GetFloat64(KeyEpsilon)),
		WithSerialThreshold(v.GetInt(KeySerialThreshold)),
		WithWorkers(v.GetInt(KeyWorkers)),
	)
}
