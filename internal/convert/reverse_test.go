package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProse_Basic(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("∀x∈S")
	require.NoError(t, err)
	assert.Contains(t, prose, "for all")
	assert.Contains(t, prose, "in")
}

func TestToProse_CanonicalPhrases(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("x≜5∧y≜10")
	require.NoError(t, err)
	assert.Contains(t, prose, "defined as")
	assert.Contains(t, prose, "and")
}

func TestToProse_SkeletonPreserved(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("⟦Ω:Meta⟧{\n  domain≜auth\n}")
	require.NoError(t, err)
	assert.Contains(t, prose, "⟦Ω:Meta⟧", "block tags are structure, never vocabulary")
	assert.Contains(t, prose, "defined as")
	assert.NotContains(t, prose, "meta block")
}

func TestToProse_EvidenceSkeletonPreserved(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("⟦Ε⟧⟨δ≜0.82;φ≜100;τ≜◊⁺⁺;⊢valid;∎⟩")
	require.NoError(t, err)
	assert.Contains(t, prose, "⟦Ε⟧")
	assert.Contains(t, prose, "platinum")
	assert.Contains(t, prose, "proves")
}

func TestToProse_BareBlockSymbolTranslates(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("⟦Ω⟧")
	require.NoError(t, err)
	assert.Equal(t, "meta block", prose)
}

func TestToProse_UnknownSymbolPassesThrough(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("∀x⧫")
	require.NoError(t, err)
	assert.Contains(t, prose, "⧫")
}

func TestToProse_WordSymbolBoundaries(t *testing.T) {
	c := NewConverter(nil)

	// "fix" is a symbol; "prefix" is a word and must survive untouched.
	prose, err := c.ToProse("prefix")
	require.NoError(t, err)
	assert.Equal(t, "prefix", prose)

	prose, err = c.ToProse("fix")
	require.NoError(t, err)
	assert.Equal(t, "fixpoint", prose)
}

func TestToProse_UnbalancedBraceFails(t *testing.T) {
	c := NewConverter(nil)

	_, err := c.ToProse("⟦Ω:Meta⟧{ domain≜auth")
	require.Error(t, err)
	assert.True(t, IsMalformedInput(err))

	var me *MalformedInputError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "Ω:Meta", me.Block, "error must name the offending block")
}

func TestToProse_UnterminatedTagFails(t *testing.T) {
	c := NewConverter(nil)

	_, err := c.ToProse("⟦Ω:Meta{ x }")
	require.Error(t, err)
	assert.True(t, IsMalformedInput(err))
}

func TestToProse_UnknownBlockCodeFails(t *testing.T) {
	c := NewConverter(nil)

	_, err := c.ToProse("⟦Q:Stuff⟧{ x }")
	require.Error(t, err)

	var me *MalformedInputError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "Q:Stuff", me.Block)
}

func TestToProse_UnmatchedCloseFails(t *testing.T) {
	c := NewConverter(nil)

	for _, input := range []string{"} x", "x⟩", "⟦Γ:Rules⟧⟧"} {
		_, err := c.ToProse(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, IsMalformedInput(err), "input %q", input)
	}
}

func TestToProse_LoneTupleDelimitersAreStructure(t *testing.T) {
	// ⟨ and ⟩ are block grammar, not vocabulary: a lone delimiter is an
	// unbalanced record, never a word substitution.
	c := NewConverter(nil)

	for _, input := range []string{"⟨", "⟩"} {
		_, err := c.ToProse(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, IsMalformedInput(err), "input %q", input)
	}
}

func TestToProse_WhitespaceNormalized(t *testing.T) {
	c := NewConverter(nil)

	prose, err := c.ToProse("x≜5 ,  y≜6")
	require.NoError(t, err)
	assert.Equal(t, "x defined as 5, y defined as 6", prose)
}
