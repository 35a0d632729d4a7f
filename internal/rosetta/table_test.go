package rosetta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_CanonicalInvariant(t *testing.T) {
	_, err := NewTable([]Entry{
		{Phrase: "for all", Symbol: "∀", Category: CategoryQuantifier},
	})
	require.Error(t, err, "symbol without canonical entry must fail construction")
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "∀", cfgErr.Symbol)
}

func TestNewTable_DuplicateCanonical(t *testing.T) {
	_, err := NewTable([]Entry{
		{Phrase: "for all", Symbol: "∀", Category: CategoryQuantifier, Canonical: true},
		{Phrase: "every", Symbol: "∀", Category: CategoryQuantifier, Canonical: true},
	})
	require.Error(t, err, "two canonical entries for one symbol must fail construction")
}

func TestNewTable_InvalidCategory(t *testing.T) {
	_, err := NewTable([]Entry{
		{Phrase: "for all", Symbol: "∀", Category: "nonsense", Canonical: true},
	})
	require.Error(t, err)
}

func TestLookupForward_LongestMatchWins(t *testing.T) {
	table, err := NewTable([]Entry{
		{Phrase: "not", Symbol: "¬", Category: CategoryLogic, Canonical: true},
		{Phrase: "in", Symbol: "∈", Category: CategorySet, Canonical: true},
		{Phrase: "not in", Symbol: "∉", Category: CategorySet, Canonical: true},
	})
	require.NoError(t, err)

	m, ok := table.LookupForward([]string{"not", "in", "s"})
	require.True(t, ok)
	assert.Equal(t, "∉", m.Entry.Symbol, "longest match must win over ¬ + in")
	assert.Equal(t, 2, m.Words)

	m, ok = table.LookupForward([]string{"not", "here"})
	require.True(t, ok)
	assert.Equal(t, "¬", m.Entry.Symbol)
	assert.Equal(t, 1, m.Words)
}

func TestLookupForward_RegistrationOrderTieBreak(t *testing.T) {
	table, err := NewTable([]Entry{
		{Phrase: "either", Symbol: "∨", Category: CategoryLogic, Canonical: true},
		{Phrase: "either", Symbol: "Either", Category: CategoryType, Canonical: true},
	})
	require.NoError(t, err)

	m, ok := table.LookupForward([]string{"either"})
	require.True(t, ok)
	assert.Equal(t, "∨", m.Entry.Symbol, "first registration wins equal-length collisions")
	assert.True(t, m.Ambiguous, "collision between distinct symbols must be flagged")
}

func TestLookupForward_PrecedenceOverridesRegistration(t *testing.T) {
	table, err := NewTable([]Entry{
		{Phrase: "either", Symbol: "∨", Category: CategoryLogic, Canonical: true},
		{Phrase: "either", Symbol: "Either", Category: CategoryType, Precedence: 10, Canonical: true},
	})
	require.NoError(t, err)

	m, ok := table.LookupForward([]string{"either"})
	require.True(t, ok)
	assert.Equal(t, "Either", m.Entry.Symbol)
	assert.True(t, m.Ambiguous)
}

func TestLookupForward_CaseAndUnknown(t *testing.T) {
	table := Default()

	_, ok := table.LookupForward([]string{"zyzzyva"})
	assert.False(t, ok)

	// Callers lowercase before lookup; keys are stored lowercased.
	m, ok := table.LookupForward([]string{"for", "all"})
	require.True(t, ok)
	assert.Equal(t, "∀", m.Entry.Symbol)
}

func TestLookupReverse_CanonicalEntry(t *testing.T) {
	table := Default()

	e, ok := table.LookupReverse("∀")
	require.True(t, ok)
	assert.Equal(t, "for all", e.Phrase)
	assert.True(t, e.Canonical)

	_, ok = table.LookupReverse("☃")
	assert.False(t, ok)
}

func TestSymbols_LongestFirst(t *testing.T) {
	table := Default()
	syms := table.Symbols()
	require.NotEmpty(t, syms)

	for i := 1; i < len(syms); i++ {
		assert.GreaterOrEqual(t,
			len([]rune(syms[i-1])), len([]rune(syms[i])),
			"symbols must be sorted longest first for reverse scanning")
	}
}

func TestMerge_DemotesDuplicateCanonical(t *testing.T) {
	base := []Entry{
		{Phrase: "for all", Symbol: "∀", Category: CategoryQuantifier, Canonical: true},
	}
	extra := []Entry{
		{Phrase: "across all", Symbol: "∀", Category: CategoryQuantifier, Canonical: true},
		{Phrase: "frobnicate", Symbol: "⨍", Category: CategorySpecial, Canonical: true},
	}

	merged := Merge(base, extra)
	table, err := NewTable(merged)
	require.NoError(t, err, "merge must preserve the canonical invariant")

	e, ok := table.LookupReverse("∀")
	require.True(t, ok)
	assert.Equal(t, "for all", e.Phrase, "base canonical must survive the merge")

	e, ok = table.LookupReverse("⨍")
	require.True(t, ok)
	assert.Equal(t, "frobnicate", e.Phrase, "new symbols keep their own canonical")

	m, ok := table.LookupForward([]string{"across", "all"})
	require.True(t, ok)
	assert.Equal(t, "∀", m.Entry.Symbol)
}
