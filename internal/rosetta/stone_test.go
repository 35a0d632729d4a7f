package rosetta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitWords(phrase string) []string {
	return strings.Fields(strings.ToLower(phrase))
}

func TestDefault_Builds(t *testing.T) {
	table := Default()
	require.NotNil(t, table)
	assert.Same(t, table, Default(), "default table is built once and shared")
}

func TestDefault_MappingCount(t *testing.T) {
	table := Default()
	assert.Greater(t, table.MappingCount(), 300, "glossary should carry the full phrase set")
	assert.Greater(t, table.SymbolCount(), 70)
}

func TestDefault_EveryCategoryPresent(t *testing.T) {
	table := Default()
	cats := table.Categories()

	for _, want := range []Category{
		CategoryQuantifier, CategoryLogic, CategoryComparison, CategoryDefinition,
		CategorySet, CategoryType, CategoryTruth, CategoryBlock,
	} {
		assert.Contains(t, cats, want)
	}
}

func TestDefault_CoreLookups(t *testing.T) {
	table := Default()

	cases := []struct {
		words  []string
		symbol string
	}{
		{[]string{"for", "all"}, "∀"},
		{[]string{"there", "exists"}, "∃"},
		{[]string{"if", "and", "only", "if"}, "⇔"},
		{[]string{"greater", "than", "or", "equal"}, "≥"},
		{[]string{"defined", "as"}, "≜"},
		{[]string{"not", "in"}, "∉"},
		{[]string{"empty", "set"}, "∅"},
		{[]string{"natural", "number"}, "ℕ"},
		{[]string{"true"}, "⊤"},
		{[]string{":="}, "≔"},
	}
	for _, tc := range cases {
		m, ok := table.LookupForward(tc.words)
		require.True(t, ok, "lookup %v", tc.words)
		assert.Equal(t, tc.symbol, m.Entry.Symbol, "lookup %v", tc.words)
		assert.Equal(t, len(tc.words), m.Words, "lookup %v must consume all words", tc.words)
	}
}

func TestDefault_CanonicalRoundTripsToSameSymbol(t *testing.T) {
	// Anti-drift at the table level: the canonical phrase of every symbol
	// must resolve back to that symbol under forward lookup.
	table := Default()

	for _, sym := range table.Symbols() {
		e, ok := table.LookupReverse(sym)
		require.True(t, ok, "symbol %q has no canonical entry", sym)

		words := splitWords(e.Phrase)
		m, ok := table.LookupForward(words)
		require.True(t, ok, "canonical phrase %q of %q does not match forward", e.Phrase, sym)
		assert.Equal(t, sym, m.Entry.Symbol,
			"canonical phrase %q drifted to %q", e.Phrase, m.Entry.Symbol)
		assert.Equal(t, len(words), m.Words,
			"canonical phrase %q only partially consumed", e.Phrase)
	}
}

func TestDefault_TupleDelimitersAreNotVocabulary(t *testing.T) {
	// ⟨ and ⟩ belong to the block grammar; registering them as entries
	// would break the canonical round-trip guarantee above.
	table := Default()

	for _, sym := range []string{"⟨", "⟩"} {
		_, ok := table.LookupReverse(sym)
		assert.False(t, ok, "%q must not be a glossary symbol", sym)
	}
	_, ok := table.LookupForward([]string{"tuple", "start"})
	assert.False(t, ok)
}

func TestDefault_AmbiguousSynonyms(t *testing.T) {
	table := Default()

	// "minus" is registered for both ∖ (set difference) and − (subtraction);
	// the set reading registered first and wins.
	m, ok := table.LookupForward([]string{"minus"})
	require.True(t, ok)
	assert.Equal(t, "∖", m.Entry.Symbol)
	assert.True(t, m.Ambiguous)
}
