package runlength

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/cocosip/go-byte-codec/codec"

	"github.com/stretchr/testify/require"
)

func TestPairsSplitsLongRuns(t *testing.T) {
	pairs := Pairs(bytes.Repeat([]byte{0xab}, 300))
	require.Equal(t, []Pair{{Value: 0xab, Count: 255}, {Value: 0xab, Count: 45}}, pairs)

	pairs = Pairs(bytes.Repeat([]byte{1}, 510))
	require.Equal(t, []Pair{{Value: 1, Count: 255}, {Value: 1, Count: 255}}, pairs)
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []Pair
	}{
		{name: "empty", data: nil, want: nil},
		{name: "single byte", data: []byte{9}, want: []Pair{{9, 1}}},
		{name: "final run flushed", data: []byte{1, 1, 2, 2, 2}, want: []Pair{{1, 2}, {2, 3}}},
		{name: "no repeats", data: []byte{1, 2, 3}, want: []Pair{{1, 1}, {2, 1}, {3, 1}}},
		{name: "run of 255", data: bytes.Repeat([]byte{4}, 255), want: []Pair{{4, 255}}},
		{name: "run of 256", data: bytes.Repeat([]byte{4}, 256), want: []Pair{{4, 255}, {4, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Pairs(tt.data))
		})
	}
}

func TestEncodeSelector(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{name: "empty is raw", data: []byte{}, want: []byte{0x00, 0x00}},
		{name: "no repeats is raw", data: []byte{1, 2, 3, 4, 5}, want: []byte{0x00, 0x00, 1, 2, 3, 4, 5}},
		{name: "tie is raw", data: []byte{1, 1, 2, 2}, want: []byte{0x00, 0x00, 1, 1, 2, 2}},
		{name: "shorter runs win", data: []byte{1, 1, 1, 2, 2, 2}, want: []byte{0xff, 0xff, 1, 3, 2, 3}},
		{
			name: "long run is split",
			data: bytes.Repeat([]byte{0xab}, 300),
			want: []byte{0xff, 0xff, 0xab, 255, 0xab, 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(tt.data))
		})
	}
}

func TestEncodeLengthBound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(600))
		for j := range data {
			// small alphabet so runs happen
			data[j] = byte(rng.Intn(1 + i%4))
		}

		encoded := Encode(data)
		pairsLength := 2 * len(Pairs(data))
		want := HeaderSize + len(data)
		if pairsLength < len(data) {
			want = HeaderSize + pairsLength
		}
		require.Equal(t, want, len(encoded))
		require.LessOrEqual(t, len(encoded), len(data)+HeaderSize)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.True(t, bytes.Equal(data, decoded))
	}
}

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single byte", data: []byte{0}},
		{name: "all identical", data: bytes.Repeat([]byte{7}, 1000)},
		{name: "256 distinct values", data: all},
		{name: "mixed runs", data: append(bytes.Repeat([]byte{1}, 700), append(all, bytes.Repeat([]byte{2}, 3)...)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(Encode(tt.data))
			require.NoError(t, err)
			require.Equal(t, len(tt.data), len(decoded))
			require.True(t, bytes.Equal(tt.data, decoded))
		})
	}
}

func TestDecodeAnyNonZeroSelectorIsRuns(t *testing.T) {
	decoded, err := Decode([]byte{0x01, 0x00, 'x', 3})
	require.NoError(t, err)
	require.Equal(t, []byte("xxx"), decoded)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		block   []byte
		checkFn func(error) bool
	}{
		{name: "nil block", block: nil, checkFn: codec.IsInvalidInput},
		{name: "one byte", block: []byte{0xff}, checkFn: codec.IsInvalidInput},
		{name: "odd pair payload", block: []byte{0xff, 0xff, 1, 2, 3}, checkFn: codec.IsCorruptStream},
		{name: "zero count", block: []byte{0xff, 0xff, 1, 0}, checkFn: codec.IsCorruptStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.block)
			require.Error(t, err)
			require.True(t, tt.checkFn(err), "unexpected error kind: %v", err)
		})
	}
}

func TestDecodeRawOddLengthIsFine(t *testing.T) {
	decoded, err := Decode([]byte{0, 0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, decoded)
}

func TestInspect(t *testing.T) {
	info, err := Inspect(Encode(bytes.Repeat([]byte{0xab}, 300)))
	require.NoError(t, err)
	require.Equal(t, &BlockInfo{
		Selector:      SelectorRuns,
		Runs:          true,
		PayloadLength: 4,
		PairCount:     2,
		DecodedLength: 300,
	}, info)

	info, err = Inspect(Encode([]byte{1, 2, 3}))
	require.NoError(t, err)
	require.False(t, info.Runs)
	require.Equal(t, 3, info.DecodedLength)

	_, err = Inspect([]byte{0xff, 0xff, 1})
	require.True(t, codec.IsCorruptStream(err))
}

func TestCodecRegistered(t *testing.T) {
	c, err := codec.Get(".rle")
	require.NoError(t, err)
	require.Equal(t, "runlength", c.Name())

	encoded, err := c.Encode([]byte{5, 5, 5})
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 5, 3}, encoded)

	fields, err := c.(codec.Inspector).Inspect(encoded)
	require.NoError(t, err)
	require.Equal(t, "0xFFFF", fields[0].Value)
}
