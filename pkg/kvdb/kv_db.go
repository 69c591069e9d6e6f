package kvdb

import (
	"errors"
	"sync"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/compress"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_MATRIX_BUCKET  = "distanceMatrix"
	BBOLTDB_INDICES_BUCKET = "neighbourIndices"
)

// KVDB caches computed results in bbolt. Matrices are msgpack encoded and
// zstd compressed, index lists are delta encoded.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{BBOLTDB_MATRIX_BUCKET, BBOLTDB_INDICES_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "cannot create result buckets")
	}
	return &KVDB{db: db}, nil
}

func (db *KVDB) put(bucket string, key, value []byte) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		return b.Put(key, value)
	})
}

// get copies the value out; bbolt memory is only valid inside the transaction.
func (db *KVDB) get(bucket string, key []byte) ([]byte, error) {
	var value []byte
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		v := b.Get(key)
		if v == nil {
			return ErrorsKeyNotExists
		}
		value = append([]byte(nil), v...)
		return nil
	})
	return value, err
}

func (db *KVDB) PutMatrix(key []byte, m geodistance.Matrix) error {
	buf, err := msgpack.Marshal(&m)
	if err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "cannot encode distance matrix")
	}
	return db.put(BBOLTDB_MATRIX_BUCKET, key, compress.Compress(buf))
}

func (db *KVDB) GetMatrix(key []byte) (geodistance.Matrix, error) {
	packed, err := db.get(BBOLTDB_MATRIX_BUCKET, key)
	if err != nil {
		return geodistance.Matrix{}, err
	}
	buf, err := compress.Decompress(packed)
	if err != nil {
		return geodistance.Matrix{}, err
	}

	var m geodistance.Matrix
	if err := msgpack.Unmarshal(buf, &m); err != nil {
		return geodistance.Matrix{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "cannot decode distance matrix")
	}
	return m, nil
}

func (db *KVDB) PutIndices(key []byte, rows [][]int) error {
	return db.put(BBOLTDB_INDICES_BUCKET, key, compress.EncodeIndexLists(rows))
}

func (db *KVDB) GetIndices(key []byte) ([][]int, error) {
	buf, err := db.get(BBOLTDB_INDICES_BUCKET, key)
	if err != nil {
		return nil, err
	}
	return compress.DecodeIndexLists(buf)
}
