// Package compress packs index lists and result blobs for the result store.
package compress

import (
	"encoding/binary"
	"sync"

	"github.com/lintang-b-s/geodistances/pkg"

	"github.com/klauspost/compress/zstd"
)

var BITMASK = []byte{
	0b00000001,
	0b00000011,
	0b00000111,
	0b00001111,
	0b00011111,
	0b00111111,
	0b01111111,
	0b11111111,
}

func getLSB(x byte, n uint8) byte {
	return x & BITMASK[n-1]
}

var bitShifts = [10]uint8{7, 7, 7, 7, 7, 7, 7, 7, 7, 1}

func appendUVarint(buf []byte, x uint64) []byte {
	for i := 0; i < len(bitShifts); i++ {
		b := getLSB(byte(x), bitShifts[i])
		x = x >> bitShifts[i]
		if x == 0 {
			return append(buf, b)
		}
		buf = append(buf, b|0b10000000)
	}
	return buf
}

func decodeUVarint(buf []byte) (uint64, int) {
	return binary.Uvarint(buf)
}

// EncodeIndexList stores an ascending index list as uvarint gaps.
func EncodeIndexList(arr []int) []byte {
	buf := make([]byte, 0, len(arr))
	prev := 0
	for _, v := range arr {
		buf = appendUVarint(buf, uint64(v-prev))
		prev = v
	}
	return buf
}

func DecodeIndexList(buf []byte) ([]int, error) {
	results := []int{}
	prev := 0
	for len(buf) > 0 {
		v, n := decodeUVarint(buf)
		if n <= 0 {
			return nil, pkg.WrapErrorf(nil, pkg.ErrInternalServerError, "corrupt index list")
		}
		prev += int(v)
		results = append(results, prev)
		buf = buf[n:]
	}
	return results, nil
}

// EncodeIndexLists stores one ascending list per row, each prefixed with its
// length.
func EncodeIndexLists(rows [][]int) []byte {
	buf := appendUVarint(nil, uint64(len(rows)))
	for _, row := range rows {
		buf = appendUVarint(buf, uint64(len(row)))
		prev := 0
		for _, v := range row {
			buf = appendUVarint(buf, uint64(v-prev))
			prev = v
		}
	}
	return buf
}

func DecodeIndexLists(buf []byte) ([][]int, error) {
	next := func() (int, error) {
		v, n := decodeUVarint(buf)
		if n <= 0 {
			return 0, pkg.WrapErrorf(nil, pkg.ErrInternalServerError, "corrupt index lists")
		}
		buf = buf[n:]
		return int(v), nil
	}

	nRows, err := next()
	if err != nil {
		return nil, err
	}
	rows := make([][]int, nRows)
	for i := range rows {
		size, err := next()
		if err != nil {
			return nil, err
		}
		row := make([]int, size)
		prev := 0
		for j := range row {
			gap, err := next()
			if err != nil {
				return nil, err
			}
			prev += gap
			row[j] = prev
		}
		rows[i] = row
	}
	return rows, nil
}

var (
	encoderOnce sync.Once
	encoder     *zstd.Encoder
	decoderOnce sync.Once
	decoder     *zstd.Decoder
)

// Compress zstd-compresses src. The shared encoder is safe for concurrent use
// through EncodeAll.
func Compress(src []byte) []byte {
	encoderOnce.Do(func() {
		encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return encoder.EncodeAll(src, make([]byte, 0, len(src)/2))
}

func Decompress(src []byte) ([]byte, error) {
	decoderOnce.Do(func() {
		decoder, _ = zstd.NewReader(nil)
	})
	out, err := decoder.DecodeAll(src, nil)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "cannot decompress blob")
	}
	return out, nil
}
