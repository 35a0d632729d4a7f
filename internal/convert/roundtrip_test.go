package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/aisp/internal/rosetta"
)

func TestRoundTrip_EverySymbolStable(t *testing.T) {
	// Anti-drift: reconverting the canonical prose of any symbol must
	// reproduce that symbol, and a second round-trip must be a fixpoint.
	c := NewConverter(nil)

	for _, sym := range rosetta.Default().Symbols() {
		prose, err := c.ToProse(sym)
		require.NoError(t, err, "toProse(%q)", sym)

		res := c.Convert(prose)
		assert.Contains(t, res.AISP, sym,
			"convert(toProse(%q)) = %q lost the symbol", sym, res.AISP)

		again, err := c.ToProse(res.AISP)
		require.NoError(t, err)
		assert.Equal(t, prose, again, "round-trip of %q is not a fixpoint", sym)
	}
}

func TestRoundTrip_SimpleSentence(t *testing.T) {
	c := NewConverter(nil)

	const original = "for all x in S"
	res := c.Convert(original)
	require.Equal(t, 1.0, res.Confidence)

	prose, err := c.ToProse(res.AISP)
	require.NoError(t, err)

	assert.Greater(t, Similarity(original, prose), 0.5,
		"round trip lost too much meaning: %q -> %q", original, prose)
}

func TestRoundTrip_ComplexSentence(t *testing.T) {
	c := NewConverter(nil)

	const original = "Define x as 5 and for all y in S, if x equals y then return true"
	res := c.Convert(original)

	prose, err := c.ToProse(res.AISP)
	require.NoError(t, err)

	assert.Greater(t, Similarity(original, prose), 0.4,
		"complex round trip lost meaning: %q -> %q", original, prose)
}

func TestRoundTrip_QuantifiedPolicy(t *testing.T) {
	c := NewConverter(nil)

	const original = "for all users, if admin then allow access"
	res := c.Convert(original)

	prose, err := c.ToProse(res.AISP)
	require.NoError(t, err)

	assert.Greater(t, Similarity(original, prose), 0.4)
}
