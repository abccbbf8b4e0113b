package punch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIBM029ReferenceMasks(t *testing.T) {
	enc := NewIBM029()
	cases := []struct {
		ch   rune
		mask HoleMask
	}{
		{'A', 1<<11 | 1<<1}, // 12+1
		{'Z', 1<<0 | 1<<9},  // 0+9
		{'0', 1 << 0},
		{'9', 1 << 9},
		{'&', 1 << 11},         // 12 only
		{'-', 1 << 10},         // 11 only
		{'/', 1<<0 | 1<<1},     // 0+1
		{'$', 1<<10 | 1<<3 | 1<<8}, // 11+3+8
		{' ', 0},
	}
	for _, tc := range cases {
		mask, err := enc.Encode(tc.ch)
		require.NoError(t, err, "char %q", tc.ch)
		assert.Equal(t, tc.mask, mask, "char %q", tc.ch)
	}
}

func TestIBM029CoversSupportedSet(t *testing.T) {
	enc := NewIBM029()
	for _, ch := range SupportedSet {
		_, err := enc.Encode(ch)
		require.NoError(t, err, "char %q", ch)
		require.True(t, enc.Supports(ch), "char %q", ch)
	}
}

func TestIBM029Injective(t *testing.T) {
	enc := NewIBM029()
	seen := make(map[HoleMask]rune)
	for _, ch := range SupportedSet {
		mask, err := enc.Encode(ch)
		require.NoError(t, err)
		prev, dup := seen[mask]
		require.False(t, dup, "mask %012b maps to both %q and %q", mask, prev, ch)
		seen[mask] = ch
	}
	require.Len(t, seen, 63)
}

func TestIBM029DecodeRoundTrip(t *testing.T) {
	enc := NewIBM029()
	for _, ch := range SupportedSet {
		mask, err := enc.Encode(ch)
		require.NoError(t, err)
		got, ok := enc.Decode(mask)
		require.True(t, ok, "char %q", ch)
		assert.Equal(t, ch, got)
	}
	_, ok := enc.Decode(1<<2 | 1<<3 | 1<<4)
	assert.False(t, ok, "mask outside the chart must not decode")
}

func TestIBM029CaseFolding(t *testing.T) {
	enc := NewIBM029()
	for ch := 'a'; ch <= 'z'; ch++ {
		lower, err := enc.Encode(ch)
		require.NoError(t, err)
		upper, err := enc.Encode(ch - 'a' + 'A')
		require.NoError(t, err)
		assert.Equal(t, upper, lower, "char %q", ch)
	}
}

func TestIBM029UnsupportedChar(t *testing.T) {
	enc := NewIBM029()
	_, err := enc.Encode('~')
	require.Error(t, err)
	var unsupported *UnsupportedCharError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, '~', unsupported.Char)
	assert.False(t, enc.Supports('~'))
}

func TestEncoderForAlwaysPunchesIBM029(t *testing.T) {
	for _, kind := range []EncodingKind{EncodingHollerith, EncodingAscii, EncodingEbcdic} {
		enc := EncoderFor(kind)
		require.NotNil(t, enc)
		assert.Equal(t, "IBM029", enc.Name())
	}
}
