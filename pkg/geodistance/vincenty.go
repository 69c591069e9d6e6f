package geodistance

import (
	"math"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"
)

// Vincenty is geodesic distance on the ellipsoid (a, b, f) of the settings,
// WGS84 by default. Both the inverse and the direct problem iterate until the
// change drops to Settings.Tolerance or Settings.MaxIterations is reached.
//
// https://www.movable-type.co.uk/scripts/latlong-vincenty.html
type Vincenty struct{}

func (Vincenty) Name() string {
	return "vincenty"
}

// reducedLatitude returns sin and cos of atan((1-f) tan(lat)). The sin/cos
// form stays exact at the poles where tan(lat) blows up.
func reducedLatitude(lat, f float64) (float64, float64) {
	sinLat, cosLat := math.Sincos(lat)
	t := (1 - f) * sinLat
	h := math.Hypot(t, cosLat)
	return t / h, cosLat / h
}

type ellipsoid struct {
	a, b, f float64
	tol     float64
	eps     float64
	maxIter int
}

func newEllipsoid(s config.Settings) ellipsoid {
	s = s.OrDefault()
	return ellipsoid{
		a:       s.EllipsoidA(),
		b:       s.EllipsoidB(),
		f:       s.EllipsoidF(),
		tol:     s.Tolerance(),
		eps:     s.Epsilon(),
		maxIter: s.MaxIterations(),
	}
}

// seriesAB returns Vincenty's A and B coefficients for cos^2(alpha).
func (e ellipsoid) seriesAB(cosSqAlpha float64) (float64, float64) {
	uSq := cosSqAlpha * (e.a*e.a - e.b*e.b) / (e.b * e.b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	return A, B
}

func deltaSigma(B, sinSigma, cosSigma, cos2SigmaM float64) float64 {
	c2 := cos2SigmaM * cos2SigmaM
	return B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*c2)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*c2)))
}

func (e ellipsoid) lambdaCorrection(sinAlpha, cosSqAlpha, sigma, sinSigma, cosSigma, cos2SigmaM float64) float64 {
	C := e.f / 16 * cosSqAlpha * (4 + e.f*(4-3*cosSqAlpha))
	return (1 - C) * e.f * sinAlpha *
		(sigma + C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
}

// inverse returns the geodesic length divided by b, the number of
// iterations used and whether lambda settled within tolerance. On
// non-convergence the last iterate is returned.
func (e ellipsoid) inverse(sinU1, cosU1, lng1, lat2, lng2 float64) (float64, int, bool) {
	L := math.Remainder(lng2-lng1, 2*math.Pi)
	sinU2, cosU2 := reducedLatitude(lat2, e.f)

	var sigma, sinSigma, cosSigma, sinAlpha, cosSqAlpha, cos2SigmaM float64
	lambda := L
	iterations, converged := 0, false
	for iterations < e.maxIter {
		iterations++
		sinLambda, cosLambda := math.Sincos(lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda

		if sinSigma <= e.eps {
			// coincident (sigma = 0) or exactly antipodal (sigma = pi) on the
			// auxiliary sphere
			sinSigma = 0
			sigma = math.Atan2(0, cosSigma)
			sinAlpha, cosSqAlpha = 0, 1
			cos2SigmaM = cosSigma - 2*sinU1*sinU2
			converged = true
			break
		}

		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if math.Abs(cosSqAlpha) > e.eps {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			// equatorial line
			cos2SigmaM = 0
		}

		prev := lambda
		lambda = L + e.lambdaCorrection(sinAlpha, cosSqAlpha, sigma, sinSigma, cosSigma, cos2SigmaM)
		if math.Abs(lambda-prev) <= e.tol {
			converged = true
			break
		}
	}

	A, B := e.seriesAB(cosSqAlpha)
	return A * (sigma - deltaSigma(B, sinSigma, cosSigma, cos2SigmaM)), iterations, converged
}

// DistanceFromPointRad returns geodesic lengths divided by the semi-minor axis.
func (Vincenty) DistanceFromPointRad(srcLat, srcLng float64, dstLat, dstLng []float64, s config.Settings) ([]float64, Convergence) {
	e := newEllipsoid(s)
	sinU1, cosU1 := reducedLatitude(srcLat, e.f)

	out := make([]float64, len(dstLat))
	conv := Convergence{}
	for j := range dstLat {
		d, iterations, converged := e.inverse(sinU1, cosU1, srcLng, dstLat[j], dstLng[j])
		out[j] = sentinel(d)
		conv.observe(iterations, converged)
	}
	return out, conv
}

func (Vincenty) Scale(s config.Settings) float64 {
	return s.OrDefault().EllipsoidB()
}

func (v Vincenty) DistanceFromPoint(src geo.LatLng, dst geo.Coordinates, s config.Settings) Distances {
	return distanceFromPoint(v, src, dst, s)
}

func (v Vincenty) Distance(src, dst geo.Coordinates, s config.Settings) Matrix {
	return distance(v, src, dst, s)
}

func (v Vincenty) WithinDistance(src, dst geo.Coordinates, threshold float64, s config.Settings) (BoolMatrix, error) {
	return withinDistance(v, src, dst, threshold, s)
}

// direct returns the end point in radians of travelling dist km from
// (lat1, lng1) along the initial bearing theta.
func (e ellipsoid) direct(lat1, lng1, dist, theta float64) (float64, float64, int, bool) {
	sinTheta, cosTheta := math.Sincos(theta)
	sinU1, cosU1 := reducedLatitude(lat1, e.f)

	sigma1 := math.Atan2(sinU1, cosU1*cosTheta)
	sinAlpha := cosU1 * sinTheta
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	A, B := e.seriesAB(cosSqAlpha)

	base := dist / (e.b * A)
	sigma := base
	iterations, converged := 0, false
	for iterations < e.maxIter {
		iterations++
		cos2SigmaM := math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma := math.Sincos(sigma)
		prev := sigma
		sigma = base + deltaSigma(B, sinSigma, cosSigma, cos2SigmaM)
		if math.Abs(sigma-prev) <= e.tol {
			converged = true
			break
		}
	}

	cos2SigmaM := math.Cos(2*sigma1 + sigma)
	sinSigma, cosSigma := math.Sincos(sigma)

	x := sinU1*sinSigma - cosU1*cosSigma*cosTheta
	lat2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosTheta, (1-e.f)*math.Sqrt(sinAlpha*sinAlpha+x*x))
	lambda := math.Atan2(sinSigma*sinTheta, cosU1*cosSigma-sinU1*sinSigma*cosTheta)
	L := lambda - e.lambdaCorrection(sinAlpha, cosSqAlpha, sigma, sinSigma, cosSigma, cos2SigmaM)

	return lat2, lng1 + L, iterations, converged
}

// Displace solves the direct problem on the ellipsoid. When some rows do not
// converge the best estimates are still returned together with an error
// wrapping pkg.ErrConvergence.
func (Vincenty) Displace(src geo.Coordinates, distance, bearing RowParam[float64], s config.Settings) (Displaced, error) {
	if err := ValidateDisplacement(len(src), distance, bearing); err != nil {
		return Displaced{}, err
	}
	e := newEllipsoid(s)

	lats, lngs := src.Radians()
	outLat := make([]float64, len(src))
	outLng := make([]float64, len(src))
	conv := Convergence{}
	for i := range src {
		lat, lng, iterations, converged := e.direct(lats[i], lngs[i], distance.At(i), geo.DegToRad(geo.NormalizeBearing(bearing.At(i))))
		outLat[i], outLng[i] = lat, lng
		conv.observe(iterations, converged)
	}

	res := Displaced{
		Coordinates: geo.FromRadians(outLat, outLng),
		Convergence: conv,
	}
	if !conv.Converged() {
		return res, pkg.WrapErrorf(nil, pkg.ErrConvergence,
			"%d of %d displacements did not converge within %d iterations", conv.Unconverged, conv.Cells, e.maxIter)
	}
	return res, nil
}
