package usecases

import (
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"
)

// ResultCache stores computed matrices and index lists by key.
type ResultCache interface {
	PutMatrix(key []byte, m geodistance.Matrix) error
	GetMatrix(key []byte) (geodistance.Matrix, error)
	PutIndices(key []byte, rows [][]int) error
	GetIndices(key []byte) ([][]int, error)
}

type Config struct {
	Settings     config.Settings
	DefaultModel string
	// number of goroutines writing results to the cache
	CacheWriters int
}
