package usecases

import (
	"encoding/binary"
	"math"

	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/geo"

	"github.com/cespare/xxhash/v2"
)

// cacheKey identifies one computation: the operation, the model, the
// settings and every input coordinate in order.
type cacheKey struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newCacheKey(op, model string, s config.Settings) *cacheKey {
	k := &cacheKey{d: xxhash.New()}
	_, _ = k.d.WriteString(op)
	_, _ = k.d.WriteString("|")
	_, _ = k.d.WriteString(model)
	_, _ = k.d.WriteString("|")
	k.uint64(s.Hash())
	return k
}

func (k *cacheKey) uint64(v uint64) *cacheKey {
	binary.LittleEndian.PutUint64(k.buf[:], v)
	_, _ = k.d.Write(k.buf[:])
	return k
}

func (k *cacheKey) float(v float64) *cacheKey {
	return k.uint64(math.Float64bits(v))
}

func (k *cacheKey) coordinates(cs geo.Coordinates) *cacheKey {
	k.uint64(uint64(len(cs)))
	for _, p := range cs {
		k.float(p.Lat).float(p.Lng)
	}
	return k
}

func (k *cacheKey) bytes() []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, k.d.Sum64())
	return out
}
