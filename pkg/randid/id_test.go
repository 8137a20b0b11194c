package randid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{0, 1, 8, 32} {
		assert.Len(t, Generate(length), length)
	}
	assert.Empty(t, Generate(-1))
}

func TestGenerate_Alphabet(t *testing.T) {
	id := Generate(256)
	for _, c := range id {
		assert.Truef(t, strings.ContainsRune(alphabet, c), "unexpected character %q in %q", c, id)
	}
}

func TestGenerate_Varies(t *testing.T) {
	// Session IDs only need to be distinct across runs; 8 chars over a
	// 36-symbol alphabet makes a repeat in 50 draws vanishingly unlikely.
	seen := map[string]bool{}
	for range 50 {
		seen[Generate(8)] = true
	}
	assert.Len(t, seen, 50)
}
