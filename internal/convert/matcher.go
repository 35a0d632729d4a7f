package convert

import (
	"regexp"
	"strings"

	"github.com/roach88/aisp/internal/rosetta"
)

// Unmapped records a word that passed through conversion verbatim.
// Position is the index of the word in the matchable token stream.
type Unmapped struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

// Result is the outcome of a forward conversion.
type Result struct {
	// AISP is the converted text.
	AISP string `json:"aisp"`
	// Confidence is matched tokens over total tokens, in [0,1].
	// Exactly 1.0 iff Unmapped is empty.
	Confidence float64 `json:"confidence"`
	// Unmapped lists prose words that could not be converted, in order.
	Unmapped []Unmapped `json:"unmapped,omitempty"`
	// Warnings lists soft conditions (ambiguous mappings).
	Warnings []Warning `json:"warnings,omitempty"`
	// TokensTotal is the matchable token count of the input, the
	// denominator of Confidence.
	TokensTotal int `json:"tokens_total"`
}

// Converter performs prose ↔ AISP conversion over one immutable table.
// Safe for concurrent use.
type Converter struct {
	table *rosetta.Table
}

// NewConverter creates a converter. A nil table means the built-in Rosetta
// Stone.
func NewConverter(table *rosetta.Table) *Converter {
	if table == nil {
		table = rosetta.Default()
	}
	return &Converter{table: table}
}

// Table returns the converter's mapping table.
func (c *Converter) Table() *rosetta.Table {
	return c.table
}

var (
	defineAsRe = regexp.MustCompile(`(?i)\bdefine\s+(\w+)\s+as\s+(\S+)`)
	letEqRe    = regexp.MustCompile(`(?i)\blet\s+(\w+)\s*=\s*(\S+)`)
	constEqRe  = regexp.MustCompile(`(?i)\bconst\s+(\w+)\s*=\s*(\S+)`)

	// Glue operators bind tight; drop the spaces substitution left around them.
	glueRe = regexp.MustCompile(`[ \t]*([≜≔⇒∈→⇔∧∨])[ \t]*`)
)

// Stop words are never reported as unmapped; they carry no content the
// notation needs to preserve.
var stopWords = map[string]bool{
	"the": true, "with": true, "that": true, "this": true, "from": true,
	"into": true, "when": true, "where": true, "which": true, "what": true,
}

// rewriteAssignments collapses definition sugar before phrase matching:
// "define x as 5", "let x = 5", and "const x = 5" all become "x≜5".
func rewriteAssignments(input string) string {
	input = defineAsRe.ReplaceAllString(input, "$1≜$2")
	input = letEqRe.ReplaceAllString(input, "$1≜$2")
	input = constEqRe.ReplaceAllString(input, "$1≜$2")
	return input
}

// span is a phrase match over the token stream, inclusive of both ends.
type span struct {
	startTok int
	endTok   int
	symbol   string
}

// Convert translates prose to AISP notation.
//
// Maximal munch: at each position the longest registered phrase wins and
// its words are consumed for good. Unknown words pass through verbatim;
// short identifiers, numbers, operators, and stop words pass through
// without counting against confidence, since they are part of the notation
// rather than untranslated prose.
func (c *Converter) Convert(prose string) Result {
	toks := tokenize(rewriteAssignments(prose))

	// Matchable token indexes, plus adjacency: a phrase may span two
	// matchable tokens only if nothing but whitespace sits between them.
	var widx []int
	for i, tok := range toks {
		if tok.Kind != tokenSeparator {
			widx = append(widx, i)
		}
	}
	adjacent := make([]bool, len(widx))
	for k := 0; k+1 < len(widx); k++ {
		adjacent[k] = true
		for i := widx[k] + 1; i < widx[k+1]; i++ {
			if !isWhitespace(toks[i]) {
				adjacent[k] = false
				break
			}
		}
	}

	var (
		spans    []span
		unmapped []Unmapped
		warnings []Warning
	)

	k := 0
	for k < len(widx) {
		// Collect the adjacent window starting here, no longer than the
		// longest registered phrase.
		var words []string
		for j := k; j < len(widx); j++ {
			words = append(words, strings.ToLower(toks[widx[j]].Text))
			if len(words) == c.table.MaxPhraseWords() || !adjacent[j] {
				break
			}
		}

		m, ok := c.table.LookupForward(words)
		if !ok {
			tok := toks[widx[k]]
			if isUnmappedWord(tok) {
				unmapped = append(unmapped, Unmapped{Position: k, Text: tok.Text})
			}
			k++
			continue
		}

		if m.Ambiguous {
			warnings = append(warnings, Warning{
				Code:     CodeAmbiguousMapping,
				Position: k,
				Text:     strings.Join(words[:m.Words], " "),
				Symbol:   m.Entry.Symbol,
			})
		}
		spans = append(spans, span{
			startTok: widx[k],
			endTok:   widx[k+m.Words-1],
			symbol:   m.Entry.Symbol,
		})
		k += m.Words
	}

	// Reassemble: matched spans become symbols, everything else is verbatim.
	var b strings.Builder
	t := 0
	for _, sp := range spans {
		for ; t < sp.startTok; t++ {
			b.WriteString(toks[t].Text)
		}
		b.WriteString(sp.symbol)
		t = sp.endTok + 1
	}
	for ; t < len(toks); t++ {
		b.WriteString(toks[t].Text)
	}

	out := strings.TrimSpace(glueRe.ReplaceAllString(b.String(), "$1"))

	total := len(widx)
	confidence := 1.0
	if total > 0 {
		confidence = float64(total-len(unmapped)) / float64(total)
	}

	return Result{
		AISP:        out,
		Confidence:  confidence,
		Unmapped:    unmapped,
		Warnings:    warnings,
		TokensTotal: total,
	}
}

// isUnmappedWord reports whether an unmatched token counts as untranslated
// prose. Pure letter words of three or more characters do, unless they are
// stop words; identifiers, numbers, and operators are notation and pass
// freely.
func isUnmappedWord(tok token) bool {
	if tok.Kind != tokenWord {
		return false
	}
	runes := []rune(tok.Text)
	if len(runes) < 3 {
		return false
	}
	for _, r := range runes {
		if !isLetter(r) {
			return false
		}
	}
	return !stopWords[strings.ToLower(tok.Text)]
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
