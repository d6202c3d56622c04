package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Fluid(t *testing.T) {
	e, err := Parse("(fluid 0.1 1)")
	require.NoError(t, err)
	assert.Equal(t, "(fluid 0.1 1)", e.String())
}

func TestParse_Mix(t *testing.T) {
	e, err := Parse("(mix (fluid 0.1 1) (fluid 0.2 1))")
	require.NoError(t, err)
	assert.Equal(t, "(mix (fluid 0.1 1) (fluid 0.2 1))", e.String())
}

func TestParse_Fraction(t *testing.T) {
	e, err := Parse("(fluid 1/4 1)")
	require.NoError(t, err)
	assert.Equal(t, "(fluid 0.25 1)", e.String())
}

func TestParse_RoundTrip(t *testing.T) {
	for _, src := range []string{
		"(fluid 0.1 1)",
		"(mix (fluid 0.1 1) (fluid 0.2 1))",
		"(mix (mix (fluid 0 1) (fluid 1 1)) (fluid 0.5 2))",
	} {
		e, err := Parse(src)
		require.NoError(t, err)
		reparsed, err := Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, e.String(), reparsed.String())
	}
}

func TestParse_RejectsMissingParen(t *testing.T) {
	_, err := Parse("(fluid 0.1 1")
	assert.Error(t, err)
}

func TestParse_RejectsMissingKeyword(t *testing.T) {
	_, err := Parse("(0.1 1)")
	assert.Error(t, err)
}

func TestParse_RejectsNonNumericChild(t *testing.T) {
	_, err := Parse("(fluid abc 1)")
	assert.Error(t, err)
}
