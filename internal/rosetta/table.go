package rosetta

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// ConfigError reports an invalid table configuration at construction time.
type ConfigError struct {
	Symbol  string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("mapping table: symbol %q: %s", e.Symbol, e.Message)
	}
	return fmt.Sprintf("mapping table: %s", e.Message)
}

// Table is the immutable Rosetta Stone registry.
//
// Built once by NewTable and never mutated; all methods are safe for
// concurrent use without locking.
type Table struct {
	entries  []Entry
	byPhrase map[string][]int // normalized phrase -> entry indexes, best first
	reverse  map[string]int   // symbol -> canonical entry index
	symbols  []string         // all symbols, longest first (reverse scan order)
	maxWords int
}

// NewTable builds a table from entries, validating the canonical invariant:
// every symbol must have exactly one canonical entry. Entries are indexed by
// descending phrase word count; equal-length collisions on the same phrase
// are ordered by precedence, then registration order.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries:  make([]Entry, len(entries)),
		byPhrase: make(map[string][]int, len(entries)),
		reverse:  make(map[string]int),
	}

	canonicalCount := make(map[string]int)
	seenSymbol := make(map[string]bool)
	var symbolOrder []string

	for i, e := range entries {
		e.Symbol = norm.NFC.String(e.Symbol)
		e.Phrase = strings.TrimSpace(e.Phrase)
		if e.Symbol == "" {
			return nil, &ConfigError{Message: fmt.Sprintf("entry %d: empty symbol", i)}
		}
		if e.Phrase == "" {
			return nil, &ConfigError{Symbol: e.Symbol, Message: "empty phrase"}
		}
		if !ValidCategories[e.Category] {
			return nil, &ConfigError{Symbol: e.Symbol, Message: fmt.Sprintf("invalid category %q", e.Category)}
		}
		t.entries[i] = e

		key := normalizePhrase(e.Phrase)
		t.byPhrase[key] = append(t.byPhrase[key], i)
		if n := len(strings.Fields(key)); n > t.maxWords {
			t.maxWords = n
		}

		if !seenSymbol[e.Symbol] {
			seenSymbol[e.Symbol] = true
			symbolOrder = append(symbolOrder, e.Symbol)
		}
		if e.Canonical {
			canonicalCount[e.Symbol]++
			t.reverse[e.Symbol] = i
		}
	}

	for _, sym := range symbolOrder {
		switch canonicalCount[sym] {
		case 0:
			return nil, &ConfigError{Symbol: sym, Message: "no canonical reverse entry"}
		case 1:
			// ok
		default:
			return nil, &ConfigError{Symbol: sym, Message: fmt.Sprintf("%d canonical reverse entries, want exactly 1", canonicalCount[sym])}
		}
	}

	// Stable collision order: precedence desc, then registration order.
	for _, idxs := range t.byPhrase {
		sort.SliceStable(idxs, func(a, b int) bool {
			return t.entries[idxs[a]].Precedence > t.entries[idxs[b]].Precedence
		})
	}

	// Reverse scan order: longest symbol first so multi-rune symbols like
	// ∃! and ◊⁺⁺ are consumed before their prefixes.
	t.symbols = symbolOrder
	sort.SliceStable(t.symbols, func(a, b int) bool {
		la, lb := len([]rune(t.symbols[a])), len([]rune(t.symbols[b]))
		if la != lb {
			return la > lb
		}
		return t.symbols[a] < t.symbols[b]
	})

	return t, nil
}

// LookupForward finds the longest registered phrase matching a prefix of
// words. The words must already be lowercased. Returns false if no phrase
// matches at this position.
func (t *Table) LookupForward(words []string) (Match, bool) {
	n := len(words)
	if n > t.maxWords {
		n = t.maxWords
	}
	for ; n >= 1; n-- {
		key := norm.NFC.String(strings.Join(words[:n], " "))
		idxs, ok := t.byPhrase[key]
		if !ok {
			continue
		}
		best := t.entries[idxs[0]]
		ambiguous := false
		for _, j := range idxs[1:] {
			if t.entries[j].Symbol != best.Symbol {
				ambiguous = true
				break
			}
		}
		return Match{Entry: best, Words: n, Ambiguous: ambiguous}, true
	}
	return Match{}, false
}

// LookupReverse returns the canonical entry for a symbol.
func (t *Table) LookupReverse(symbol string) (Entry, bool) {
	i, ok := t.reverse[norm.NFC.String(symbol)]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], ok
}

// Symbols returns every registered symbol, longest first. The slice is
// shared; callers must not modify it.
func (t *Table) Symbols() []string {
	return t.symbols
}

// MaxPhraseWords returns the word count of the longest registered phrase.
func (t *Table) MaxPhraseWords() int {
	return t.maxWords
}

// MappingCount returns the total number of phrase mappings.
func (t *Table) MappingCount() int {
	return len(t.entries)
}

// SymbolCount returns the number of distinct symbols.
func (t *Table) SymbolCount() int {
	return len(t.reverse)
}

// Categories returns the distinct categories in use, sorted.
func (t *Table) Categories() []Category {
	seen := make(map[Category]bool)
	var cats []Category
	for _, e := range t.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	sort.Slice(cats, func(a, b int) bool { return cats[a] < cats[b] })
	return cats
}

// EntriesByCategory returns the entries of one category in registration order.
func (t *Table) EntriesByCategory(cat Category) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns a copy of all entries in registration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// normalizePhrase lowercases, NFC-normalizes, and collapses inner whitespace.
func normalizePhrase(phrase string) string {
	return norm.NFC.String(strings.Join(strings.Fields(strings.ToLower(phrase)), " "))
}

// Merge appends extension entries to a base set, demoting canonical flags on
// extension entries whose symbol already has a canonical base entry. This
// lets mapping packs add synonyms for built-in symbols without violating the
// one-canonical-per-symbol invariant.
func Merge(base, extra []Entry) []Entry {
	canonical := make(map[string]bool, len(base))
	for _, e := range base {
		if e.Canonical {
			canonical[norm.NFC.String(e.Symbol)] = true
		}
	}
	out := make([]Entry, 0, len(base)+len(extra))
	out = append(out, base...)
	for _, e := range extra {
		if e.Canonical && canonical[norm.NFC.String(e.Symbol)] {
			e.Canonical = false
		}
		out = append(out, e)
	}
	return out
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in Rosetta Stone table. The table is built on
// first use and shared; it panics if the built-in entry set is invalid,
// which is a programming error caught by tests.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(DefaultEntries())
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
