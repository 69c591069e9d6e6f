package controllers

import (
	"strconv"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"
)

// pointRequest model info
//
//	@Description	request body for distances from one source to many destinations.
type pointRequest struct {
	Model        string          `json:"model" validate:"omitempty,max=32"` // distance model, haversine (default) or vincenty.
	Source       geo.LatLng      `json:"source"`                            // source coordinate.
	Destinations geo.Coordinates `json:"destinations" validate:"required,dive"`
}

// matrixRequest model info
//
//	@Description	request body for a distance matrix between two arrays.
type matrixRequest struct {
	Model        string          `json:"model" validate:"omitempty,max=32"`
	Sources      geo.Coordinates `json:"sources" validate:"required,dive"` // one matrix row per source.
	Destinations geo.Coordinates `json:"destinations" validate:"required,dive"`
}

// selfRequest model info
//
//	@Description	request body for a distance matrix of one array against itself.
type selfRequest struct {
	Model       string          `json:"model" validate:"omitempty,max=32"`
	Coordinates geo.Coordinates `json:"coordinates" validate:"required,dive"`
}

// pointThresholdRequest model info
//
//	@Description	give either threshold (km, for every destination) or thresholds (km, one per destination).
type pointThresholdRequest struct {
	pointRequest
	Threshold  *float64  `json:"threshold" validate:"omitempty,min=0"`
	Thresholds []float64 `json:"thresholds" validate:"omitempty,dive,min=0"`
}

type matrixThresholdRequest struct {
	matrixRequest
	Threshold float64 `json:"threshold" validate:"min=0"` // km
}

type selfThresholdRequest struct {
	selfRequest
	Threshold float64 `json:"threshold" validate:"min=0"` // km
}

// displaceRequest model info
//
//	@Description	give distance or distances (km), and bearing or bearings (degrees clockwise from north).
type displaceRequest struct {
	Model     string          `json:"model" validate:"omitempty,max=32"`
	Sources   geo.Coordinates `json:"sources" validate:"required,dive"`
	Distance  *float64        `json:"distance" validate:"omitempty,min=0"`
	Distances []float64       `json:"distances" validate:"omitempty,dive,min=0"`
	Bearing   *float64        `json:"bearing"`
	Bearings  []float64       `json:"bearings"`
}

func rowParam(name string, scalar *float64, perRow []float64) (geodistance.RowParam[float64], error) {
	switch {
	case scalar != nil && perRow != nil:
		return geodistance.RowParam[float64]{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "give either %s or %ss, not both", name, name)
	case scalar != nil:
		return geodistance.Scalar(*scalar), nil
	case perRow != nil:
		return geodistance.PerRow(perRow), nil
	default:
		return geodistance.RowParam[float64]{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "%s or %ss is required", name, name)
	}
}

// Missing values are encoded as null.
func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if !geodistance.IsMissing(values[i]) {
			out[i] = &values[i]
		}
	}
	return out
}

type convergenceResponse struct {
	Cells       int  `json:"cells" msgpack:"cells"`
	Unconverged int  `json:"unconverged" msgpack:"unconverged"`
	Iterations  int  `json:"iterations" msgpack:"iterations"`
	Converged   bool `json:"converged" msgpack:"converged"`
}

func newConvergenceResponse(c geodistance.Convergence) convergenceResponse {
	return convergenceResponse{
		Cells:       c.Cells,
		Unconverged: c.Unconverged,
		Iterations:  c.Iterations,
		Converged:   c.Converged(),
	}
}

// distancesResponse model info
//
//	@Description	distances in km, in destination order. null marks a value that could not be computed.
type distancesResponse struct {
	Distances   []*float64          `json:"distances" msgpack:"distances"`
	Convergence convergenceResponse `json:"convergence" msgpack:"convergence"`
}

// matrixResponse model info
//
//	@Description	distance matrix in km, one row per source.
type matrixResponse struct {
	Rows        int                 `json:"rows" msgpack:"rows"`
	Cols        int                 `json:"cols" msgpack:"cols"`
	Distances   [][]*float64        `json:"distances" msgpack:"distances"`
	Convergence convergenceResponse `json:"convergence" msgpack:"convergence"`
}

func newMatrixResponse(m geodistance.Matrix) matrixResponse {
	rows := make([][]*float64, m.Rows)
	for i := range rows {
		rows[i] = nullable(m.Row(i))
	}
	return matrixResponse{
		Rows:        m.Rows,
		Cols:        m.Cols,
		Distances:   rows,
		Convergence: newConvergenceResponse(m.Convergence),
	}
}

type proximityResponse struct {
	Within      []bool              `json:"within" msgpack:"within"`
	Convergence convergenceResponse `json:"convergence" msgpack:"convergence"`
}

type boolMatrixResponse struct {
	Rows        int                 `json:"rows" msgpack:"rows"`
	Cols        int                 `json:"cols" msgpack:"cols"`
	Within      [][]bool            `json:"within" msgpack:"within"`
	Convergence convergenceResponse `json:"convergence" msgpack:"convergence"`
}

func newBoolMatrixResponse(b geodistance.BoolMatrix) boolMatrixResponse {
	rows := make([][]bool, b.Rows)
	for i := range rows {
		rows[i] = b.Row(i)
	}
	return boolMatrixResponse{
		Rows:        b.Rows,
		Cols:        b.Cols,
		Within:      rows,
		Convergence: newConvergenceResponse(b.Convergence),
	}
}

type indicesResponse struct {
	Indices []int `json:"indices" msgpack:"indices"` // ascending
}

type indexListsResponse struct {
	Indices [][]int `json:"indices" msgpack:"indices"` // ascending, one list per row
}

type displaceResponse struct {
	Coordinates []geo.LatLng        `json:"coordinates" msgpack:"coordinates"`
	Convergence convergenceResponse `json:"convergence" msgpack:"convergence"`
}

// notConvergedDisplaceResponse model info
//
//	@Description	error plus the last iterate of every row; unconverged rows are the best estimate after max_iterations.
type notConvergedDisplaceResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Data displaceResponse `json:"data"`
}

type settingsParam struct {
	Name  string `json:"name" msgpack:"name"`
	Value string `json:"value" msgpack:"value"`
}

// settingsResponse model info
//
//	@Description	calculation settings in effect and the available models.
type settingsResponse struct {
	Repr   string          `json:"repr" msgpack:"repr"`
	Hash   string          `json:"hash" msgpack:"hash"`
	Params []settingsParam `json:"params" msgpack:"params"`
	Models []string        `json:"models" msgpack:"models"`
}

func formatHash(h uint64) string {
	return strconv.FormatUint(h, 16)
}
