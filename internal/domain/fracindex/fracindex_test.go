package fracindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/domain/fracindex"
)

func TestKeyBetween_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want string
	}{
		{"empty space", "", "", "a0"},
		{"append after first", "a0", "", "a1"},
		{"prepend before first", "", "a0", "Zz"},
		{"midpoint between siblings", "a0", "a1", "a0V"},
		{"midpoint again", "a0V", "a1", "a0l"},
		{"midpoint left half", "a0", "a0V", "a0G"},
		{"integer length growth", "az", "", "b00"},
		{"negative shrinks toward zero", "Zz", "", "a0"},
		{"second sibling midpoint", "a1", "a2", "a1V"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fracindex.KeyBetween(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKeyBetween_Ordering(t *testing.T) {
	// every generated key must sort strictly between its bounds
	check := func(a, b string) string {
		t.Helper()
		key, err := fracindex.KeyBetween(a, b)
		require.NoError(t, err)
		if a != "" {
			assert.Greater(t, key, a, "KeyBetween(%q, %q)", a, b)
		}
		if b != "" {
			assert.Less(t, key, b, "KeyBetween(%q, %q)", a, b)
		}
		return key
	}

	// repeated append
	key := ""
	for range 200 {
		key = check(key, "")
	}

	// repeated prepend
	prev := check("", "")
	for range 200 {
		prev = check("", prev)
	}

	// repeated bisection from both sides
	lo := check("", "")
	hi := check(lo, "")
	for i := range 100 {
		mid := check(lo, hi)
		if i%2 == 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
}

func TestKeyBetween_Deterministic(t *testing.T) {
	first, err := fracindex.KeyBetween("a0", "a4")
	require.NoError(t, err)
	second, err := fracindex.KeyBetween("a0", "a4")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeyBetween_Errors(t *testing.T) {
	_, err := fracindex.KeyBetween("a1", "a1")
	require.ErrorIs(t, err, fracindex.ErrKeyOrder)

	_, err = fracindex.KeyBetween("b00", "a0")
	require.ErrorIs(t, err, fracindex.ErrKeyOrder)

	_, err = fracindex.KeyBetween("a00", "")
	require.ErrorIs(t, err, fracindex.ErrInvalidKey)

	_, err = fracindex.KeyBetween("5x", "")
	require.ErrorIs(t, err, fracindex.ErrInvalidKey)
}
