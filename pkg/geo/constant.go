package geo

import "math"

const (
	kRad = math.Pi / 180.0
	kDeg = 180.0 / math.Pi
)

const (
	MinLat = -90.0
	MaxLat = 90.0
)

func DegToRad(angle float64) float64 {
	return angle * kRad
}

func RadToDeg(rad float64) float64 {
	return rad * kDeg
}
