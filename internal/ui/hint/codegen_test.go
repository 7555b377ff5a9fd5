package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeLength(t *testing.T) {
	tests := []struct {
		k, n, want int
	}{
		{k: 7, n: 0, want: 1},
		{k: 7, n: 1, want: 1},
		{k: 7, n: 7, want: 1},
		{k: 7, n: 8, want: 2},
		{k: 7, n: 10, want: 2},
		{k: 7, n: 49, want: 2},
		{k: 7, n: 50, want: 3},
		{k: 2, n: 1024, want: 10},
		{k: 2, n: 1025, want: 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeLength(tt.k, tt.n), "k=%d n=%d", tt.k, tt.n)
	}
}

func TestCodeGenerator_HomeRowScenario(t *testing.T) {
	g := NewCodeGenerator([]rune("ASDFJKL"), 10)

	assert.Equal(t, 2, g.Length())
	assert.Equal(t, "AA", g.Code(0))
	assert.Equal(t, "SA", g.Code(7))
	assert.Equal(t, "SS", g.Code(8))
	assert.Equal(t, "SD", g.Code(9))
}

func TestCodeGenerator_EmptyAndSingle(t *testing.T) {
	empty := NewCodeGenerator([]rune("ab"), 0)
	assert.Empty(t, empty.Codes())
	_, ok := empty.Next()
	assert.False(t, ok)

	single := NewCodeGenerator([]rune("xyz"), 1)
	assert.Equal(t, 1, single.Length())
	assert.Equal(t, []string{"x"}, single.Codes())
}

func TestCodeGenerator_PropertiesAcrossSizes(t *testing.T) {
	for _, alphabet := range []string{"ab", "asdfghjkl", "ASDFJKL"} {
		k := len(alphabet)
		for n := 0; n <= 120; n++ {
			g := NewCodeGenerator([]rune(alphabet), n)
			codes := g.Codes()
			require.Len(t, codes, n)

			seen := make(map[string]bool, n)
			for i, code := range codes {
				assert.Len(t, []rune(code), g.Length())
				assert.False(t, seen[code], "duplicate code %q", code)
				seen[code] = true

				back, ok := g.Decode(code)
				require.True(t, ok, code)
				assert.Equal(t, i, back)
			}

			// minimal length
			if n > 1 {
				capacity := 1
				for i := 0; i < g.Length()-1; i++ {
					capacity *= k
				}
				assert.Less(t, capacity, n, "length %d is not minimal for n=%d", g.Length(), n)
			}
		}
	}
}

func TestCodeGenerator_CursorMatchesLookup(t *testing.T) {
	g := NewCodeGenerator([]rune("asdf"), 6)

	var got []string
	for code, ok := g.Next(); ok; code, ok = g.Next() {
		got = append(got, code)
	}
	assert.Equal(t, g.Codes(), got)

	g.Reset()
	first, ok := g.Next()
	assert.True(t, ok)
	assert.Equal(t, "aa", first)
}

func TestCodeGenerator_IsDeterministic(t *testing.T) {
	a := NewCodeGenerator([]rune("asdfghjkl"), 40).Codes()
	b := NewCodeGenerator([]rune("asdfghjkl"), 40).Codes()
	assert.Equal(t, a, b)
}

func TestCodeGenerator_DecodeRejectsForeignCodes(t *testing.T) {
	g := NewCodeGenerator([]rune("ab"), 3)

	_, ok := g.Decode("bb")
	assert.False(t, ok, "ordinal 3 is outside the batch")
	_, ok = g.Decode("zz")
	assert.False(t, ok)
	_, ok = g.Decode("a")
	assert.False(t, ok)
}

func TestNewCodeGenerator_PanicsOnTinyAlphabet(t *testing.T) {
	assert.Panics(t, func() { NewCodeGenerator([]rune("a"), 3) })
}
