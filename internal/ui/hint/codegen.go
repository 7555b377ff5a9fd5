// Package hint implements hint-code generation, target discovery and the
// capability table that decides what accepting a hinted element does.
package hint

// CodeGenerator assigns fixed-length codes to the ordinals of one discovery batch.
// Codes are the base-K digits of the ordinal over the alphabet, most
// significant first, padded with the alphabet's first character.
type CodeGenerator struct {
	alphabet []rune
	count    int
	length   int
	cursor   int
}

// NewCodeGenerator prepares codes for count targets.
// It panics when the alphabet has fewer than two characters.
func NewCodeGenerator(alphabet []rune, count int) *CodeGenerator {
	if len(alphabet) < 2 {
		panic("hint.NewCodeGenerator: alphabet needs at least 2 characters")
	}
	if count < 0 {
		count = 0
	}
	a := make([]rune, len(alphabet))
	copy(a, alphabet)
	return &CodeGenerator{
		alphabet: a,
		count:    count,
		length:   CodeLength(len(a), count),
	}
}

// CodeLength returns the smallest L >= 1 with k^L >= n.
func CodeLength(k, n int) int {
	length := 1
	for capacity := k; capacity < n; capacity *= k {
		length++
	}
	return length
}

// Length returns the length shared by every code of the batch.
func (g *CodeGenerator) Length() int { return g.length }

// Count returns the number of codes in the batch.
func (g *CodeGenerator) Count() int { return g.count }

// Code returns the code of ordinal i. It panics when i is out of range.
func (g *CodeGenerator) Code(i int) string {
	if i < 0 || i >= g.count {
		panic("hint.CodeGenerator.Code: ordinal out of range")
	}
	k := len(g.alphabet)
	digits := make([]rune, g.length)
	for pos := g.length - 1; pos >= 0; pos-- {
		digits[pos] = g.alphabet[i%k]
		i /= k
	}
	return string(digits)
}

// Next returns the code under the cursor and advances it.
func (g *CodeGenerator) Next() (string, bool) {
	if g.cursor >= g.count {
		return "", false
	}
	code := g.Code(g.cursor)
	g.cursor++
	return code, true
}

// Reset rewinds the cursor to ordinal 0.
func (g *CodeGenerator) Reset() { g.cursor = 0 }

// Codes returns every code of the batch in ordinal order.
func (g *CodeGenerator) Codes() []string {
	codes := make([]string, g.count)
	for i := range codes {
		codes[i] = g.Code(i)
	}
	return codes
}

// Decode parses a code back into its ordinal.
func (g *CodeGenerator) Decode(code string) (int, bool) {
	runes := []rune(code)
	if len(runes) != g.length {
		return 0, false
	}
	k := len(g.alphabet)
	ordinal := 0
	for _, r := range runes {
		digit := -1
		for d, a := range g.alphabet {
			if a == r {
				digit = d
				break
			}
		}
		if digit < 0 {
			return 0, false
		}
		ordinal = ordinal*k + digit
	}
	if ordinal >= g.count {
		return 0, false
	}
	return ordinal, true
}
