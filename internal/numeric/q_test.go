package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloatFloat_RoundTripsUpToEpsilon(t *testing.T) {
	for _, f := range []float64{0, 0.1, 0.15, 0.3333, 1.0} {
		q := FromFloat(f)
		assert.InDelta(t, f, q.Float(), Epsilon)
	}
}

func TestFromFloat_QuantizesIndistinguishableInputsEqually(t *testing.T) {
	a := FromFloat(0.00005)
	b := FromFloat(0.00009)
	assert.True(t, a.Equal(b), "both should quantize to the same Q under epsilon=1e-4")
}

func TestArithmetic_CongruenceRespecting(t *testing.T) {
	a1, a2 := FromFloat(0.2), FromFloat(0.2)
	b1, b2 := FromFloat(0.3), FromFloat(0.3)

	assert.True(t, a1.Add(b1).Equal(a2.Add(b2)))
	assert.True(t, a1.Sub(b1).Equal(a2.Sub(b2)))
	assert.True(t, a1.Mul(b1).Equal(a2.Mul(b2)))
	assert.True(t, a1.Div(b1).Equal(a2.Div(b2)))
}

func TestParseQ_Decimal(t *testing.T) {
	q, err := ParseQ("0.15")
	require.NoError(t, err)
	assert.InDelta(t, 0.15, q.Float(), Epsilon)
}

func TestParseQ_Fraction(t *testing.T) {
	q, err := ParseQ("1/4")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, q.Float(), Epsilon)
}

func TestParseQ_ZeroDenominatorFails(t *testing.T) {
	_, err := ParseQ("1/0")
	assert.Error(t, err)
}

func TestValid_ConcentrationBounds(t *testing.T) {
	assert.True(t, FromFloat(0).Valid())
	assert.True(t, FromFloat(1).Valid())
	assert.False(t, FromFloat(-0.1).Valid())
}

func TestValidVolume_MustBePositive(t *testing.T) {
	assert.True(t, FromFloat(1).ValidVolume())
	assert.False(t, FromFloat(0).ValidVolume())
	assert.False(t, FromFloat(-1).ValidVolume())
}
