package geodistance

import (
	"math"

	"github.com/lintang-b-s/geodistances/pkg/geo"
)

// Convergence reports how an iterative model fared over the cells of one
// result. Closed-form models always report every cell as converged.
type Convergence struct {
	Cells       int `json:"cells" msgpack:"cells"`             // number of cells computed
	Unconverged int `json:"unconverged" msgpack:"unconverged"` // cells that hit max iterations before reaching tolerance
	Iterations  int `json:"iterations" msgpack:"iterations"`   // most iterations used by any single cell
}

func (c Convergence) Converged() bool {
	return c.Unconverged == 0
}

func (c Convergence) Merge(o Convergence) Convergence {
	return Convergence{
		Cells:       c.Cells + o.Cells,
		Unconverged: c.Unconverged + o.Unconverged,
		Iterations:  max(c.Iterations, o.Iterations),
	}
}

func (c *Convergence) observe(iterations int, converged bool) {
	c.Cells++
	if !converged {
		c.Unconverged++
	}
	c.Iterations = max(c.Iterations, iterations)
}

// Missing is the sentinel stored in a cell whose value could not be computed.
var Missing = math.NaN()

func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

func sentinel(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Missing
	}
	return v
}

// Distances is a point-to-array result; Values[j] belongs to destination j.
type Distances struct {
	Values      []float64
	Convergence Convergence
}

// WithinDistance marks every destination whose distance is at most the
// threshold of its position. Missing distances never pass.
func (d Distances) WithinDistance(threshold RowParam[float64]) (Proximity, error) {
	if err := ValidateThreshold(threshold, len(d.Values)); err != nil {
		return Proximity{}, err
	}

	out := make([]bool, len(d.Values))
	for j, v := range d.Values {
		out[j] = v-threshold.At(j) <= 0
	}
	return Proximity{Values: out, Convergence: d.Convergence}, nil
}

type Proximity struct {
	Values      []bool
	Convergence Convergence
}

// Indices lists the passing positions in ascending order.
func (p Proximity) Indices() []int {
	return trueIndices(p.Values)
}

func trueIndices(values []bool) []int {
	idx := []int{}
	for j, ok := range values {
		if ok {
			idx = append(idx, j)
		}
	}
	return idx
}

// Matrix is a row-major Rows x Cols grid. Row i belongs to source i and
// column j to destination j.
type Matrix struct {
	Rows        int         `msgpack:"rows"`
	Cols        int         `msgpack:"cols"`
	Data        []float64   `msgpack:"data"`
	Convergence Convergence `msgpack:"convergence"`
}

func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

func (m Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// Row returns row i without copying.
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

func (m Matrix) Transpose() Matrix {
	t := NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Data[j*t.Cols+i] = m.Data[i*m.Cols+j]
		}
	}
	t.Convergence = m.Convergence
	return t
}

func (m Matrix) ToRows() [][]float64 {
	rows := make([][]float64, m.Rows)
	for i := range rows {
		rows[i] = append([]float64(nil), m.Row(i)...)
	}
	return rows
}

// Scale multiplies every cell by k in place.
func (m Matrix) Scale(k float64) {
	for i, v := range m.Data {
		m.Data[i] = sentinel(v * k)
	}
}

// WithinDistance marks every cell whose distance is at most threshold.
func (m Matrix) WithinDistance(threshold float64) (BoolMatrix, error) {
	if err := ValidateThreshold(Scalar(threshold), m.Rows); err != nil {
		return BoolMatrix{}, err
	}
	b := BoolMatrix{
		Rows:        m.Rows,
		Cols:        m.Cols,
		Data:        make([]bool, len(m.Data)),
		Convergence: m.Convergence,
	}
	for k, v := range m.Data {
		b.Data[k] = v-threshold <= 0
	}
	return b, nil
}

type BoolMatrix struct {
	Rows        int
	Cols        int
	Data        []bool
	Convergence Convergence
}

func (b BoolMatrix) At(i, j int) bool {
	return b.Data[i*b.Cols+j]
}

func (b BoolMatrix) Row(i int) []bool {
	return b.Data[i*b.Cols : (i+1)*b.Cols]
}

// Indices lists, per row, the passing columns in ascending order.
func (b BoolMatrix) Indices() [][]int {
	out := make([][]int, b.Rows)
	for i := range out {
		out[i] = trueIndices(b.Row(i))
	}
	return out
}

// Displaced holds the coordinates reached by displacing each source row.
type Displaced struct {
	Coordinates geo.Coordinates
	Convergence Convergence
}
