package frontend_test

import (
	"testing"

	"github.com/leapstack-labs/sqlfront/pkg/frontend"
	"github.com/stretchr/testify/assert"
)

func TestFoldingIsIdempotent(t *testing.T) {
	// Folding a folded stream must change nothing, for every byte value.
	var all []byte
	for b := 0; b < 256; b++ {
		all = append(all, byte(b))
	}
	once := frontend.NewCaseFoldingStream(string(all))

	folded := make([]byte, len(all))
	for i := range all {
		folded[i] = once.At(i)
	}
	twice := frontend.NewCaseFoldingStream(string(folded))

	for i := range all {
		assert.Equal(t, once.At(i), twice.At(i), "byte %d", all[i])
	}
}

func TestFoldingUppercasesForMatching(t *testing.T) {
	s := frontend.NewCaseFoldingStream("SeLeCt *")

	got := make([]byte, s.Len())
	for i := range got {
		got[i] = s.At(i)
	}
	assert.Equal(t, "SELECT *", string(got))
}

func TestEndOfStreamSentinel(t *testing.T) {
	s := frontend.NewCaseFoldingStream("ab")

	assert.Equal(t, byte('A'), s.At(0))
	assert.Equal(t, byte(0), s.At(2))
	assert.Equal(t, byte(0), s.At(100))
	assert.Equal(t, byte(0), s.At(-1))
}

func TestNulByteUnfolded(t *testing.T) {
	s := frontend.NewCaseFoldingStream("a\x00b")
	assert.Equal(t, byte(0), s.At(1))
}

func TestSlicePreservesOriginalText(t *testing.T) {
	s := frontend.NewCaseFoldingStream("SeLeCt FrOm")

	assert.Equal(t, "SeLeCt", s.Slice(0, 6))
	assert.Equal(t, "FrOm", s.Slice(7, 11))
	assert.Equal(t, "SeLeCt FrOm", s.Slice(0, 100))
	assert.Equal(t, "", s.Slice(5, 2))
}
