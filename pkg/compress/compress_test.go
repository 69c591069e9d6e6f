package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		indexList []int
	}{
		{
			indexList: []int{},
		},
		{
			indexList: []int{0},
		},
		{
			indexList: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			indexList: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 100, 1300, 1500},
		},
		{
			indexList: []int{1300, 1500, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000},
		},
		{
			indexList: []int{10000, 12000, 15000, 16000, 19000, 23000},
		},
		{
			indexList: []int{1000000, 1200000, 1300000, 1400000, 1500000, 1600000},
		},
	}

	for _, tt := range tests {
		t.Run("test encode decode", func(t *testing.T) {
			encoded := EncodeIndexList(tt.indexList)
			decoded, err := DecodeIndexList(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.indexList, decoded)
		})
	}
}

func TestEncodeIndexListUsesGaps(t *testing.T) {
	// 1000000 needs 3 bytes, every later gap of 1 needs one
	encoded := EncodeIndexList([]int{1000000, 1000001, 1000002})
	assert.Len(t, encoded, 5)
}

func TestEncodeDecodeIndexLists(t *testing.T) {
	rows := [][]int{{0, 1}, {}, {0, 1, 3, 700}, {2}}

	decoded, err := DecodeIndexLists(EncodeIndexLists(rows))
	require.NoError(t, err)
	assert.Equal(t, rows, decoded)

	decoded, err = DecodeIndexLists(EncodeIndexLists([][]int{}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{}, decoded)
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := DecodeIndexList([]byte{0b10000000})
	assert.Error(t, err)

	_, err = DecodeIndexLists([]byte{3, 1})
	assert.Error(t, err)
}

func TestCompressRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("geodistance "), 500)

	packed := Compress(src)
	assert.Less(t, len(packed), len(src))

	out, err := Decompress(packed)
	require.NoError(t, err)
	assert.Equal(t, src, out)

	_, err = Decompress([]byte("not zstd"))
	assert.Error(t, err)
}
