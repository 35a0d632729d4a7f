package convert

import (
	"regexp"
	"strings"
)

// Block codes recognized on the reverse path. Χ and Ε never appear in
// assembled output but remain parseable so older documents round-trip.
var validBlockCodes = map[string]bool{
	"Ω": true, "Σ": true, "Γ": true, "Λ": true, "Χ": true, "Ε": true,
}

// ToProse translates AISP text back to prose.
//
// Block skeletons are parsed first and preserved verbatim: ⟦Code:Name⟧ tags,
// braces, and evidence ⟨...⟩ wrappers are structure, not vocabulary, and are
// never turned into words. Everything between them is substituted symbol →
// canonical phrase, longest symbol first; unrecognized symbols pass through.
//
// Unbalanced delimiters or an unknown code in a ⟦Code:Name⟧ tag are a hard
// MalformedInputError naming the offending block.
func (c *Converter) ToProse(aisp string) (string, error) {
	runes := []rune(aisp)

	var b strings.Builder
	var open []string // innermost-last open delimiter context, for error naming
	currentBlock := ""

	flushText := func(start, end int) {
		if start < end {
			b.WriteString(c.substituteSymbols(string(runes[start:end])))
		}
	}

	i := 0
	text := i // start of the pending plain-text run
	for i < len(runes) {
		switch runes[i] {
		case '⟦':
			flushText(text, i)
			j := i + 1
			for j < len(runes) && runes[j] != '⟧' && runes[j] != '⟦' {
				j++
			}
			if j >= len(runes) || runes[j] == '⟦' {
				return "", &MalformedInputError{
					Block:   string(runes[i:min(j, len(runes))]),
					Message: "unterminated ⟦ delimiter",
				}
			}
			content := string(runes[i+1 : j])
			if code, _, hasName := strings.Cut(content, ":"); hasName {
				if !validBlockCodes[code] {
					return "", &MalformedInputError{Block: content, Message: "unknown block code"}
				}
				// Structured block tag: skeleton, kept verbatim.
				b.WriteString("⟦" + content + "⟧")
				currentBlock = content
			} else if j+1 < len(runes) && runes[j+1] == '⟨' {
				// Evidence intro ⟦Ε⟧⟨...⟩: skeleton.
				b.WriteString("⟦" + content + "⟧")
				currentBlock = content
			} else if e, ok := c.table.LookupReverse("⟦" + content + "⟧"); ok {
				// Bare block symbol in running text translates normally.
				b.WriteString(" " + e.Phrase + " ")
			} else {
				b.WriteString("⟦" + content + "⟧")
			}
			i = j + 1
			text = i
		case '⟧':
			return "", &MalformedInputError{Block: currentBlock, Message: "unmatched ⟧ delimiter"}
		case '{', '⟨':
			flushText(text, i)
			b.WriteRune(runes[i])
			open = append(open, blockContext(currentBlock, runes[i]))
			i++
			text = i
		case '}', '⟩':
			flushText(text, i)
			want := "{"
			if runes[i] == '⟩' {
				want = "⟨"
			}
			if len(open) == 0 || !strings.HasSuffix(open[len(open)-1], want) {
				return "", &MalformedInputError{
					Block:   currentBlock,
					Message: "unmatched " + string(runes[i]) + " delimiter",
				}
			}
			open = open[:len(open)-1]
			b.WriteRune(runes[i])
			i++
			text = i
		default:
			i++
		}
	}
	flushText(text, len(runes))

	if len(open) > 0 {
		return "", &MalformedInputError{
			Block:   strings.TrimSuffix(strings.TrimSuffix(open[len(open)-1], "{"), "⟨"),
			Message: "unclosed block",
		}
	}

	return normalizeProse(b.String()), nil
}

func blockContext(block string, delim rune) string {
	return block + string(delim)
}

// substituteSymbols replaces each recognized symbol in a plain-text segment
// with its canonical phrase, longest symbol first. Word-shaped symbols
// (List, fix, Pre) only match on word boundaries so they never fire inside
// identifiers.
func (c *Converter) substituteSymbols(seg string) string {
	runes := []rune(seg)
	var b strings.Builder

	i := 0
	for i < len(runes) {
		replaced := false
		for _, sym := range c.table.Symbols() {
			sr := []rune(sym)
			if len(sr) == 0 || i+len(sr) > len(runes) || string(runes[i:i+len(sr)]) != sym {
				continue
			}
			if isWordRune(sr[0]) && i > 0 && isWordRune(runes[i-1]) {
				continue
			}
			if isWordRune(sr[len(sr)-1]) && i+len(sr) < len(runes) && isWordRune(runes[i+len(sr)]) {
				continue
			}
			e, ok := c.table.LookupReverse(sym)
			if !ok {
				continue
			}
			b.WriteString(" " + e.Phrase + " ")
			i += len(sr)
			replaced = true
			break
		}
		if !replaced {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}

var (
	spaceRunRe      = regexp.MustCompile(`[ \t]+`)
	spacePunctRe    = regexp.MustCompile(`\s+([.,;:!?])`)
	spaceAfterOpen  = regexp.MustCompile(`([(\[{])[ \t]+`)
	spaceBeforeShut = regexp.MustCompile(`[ \t]+([)\]}])`)
)

// normalizeProse collapses the spacing artifacts substitution leaves behind,
// line by line so block layout survives.
func normalizeProse(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		ln = spaceRunRe.ReplaceAllString(ln, " ")
		ln = spacePunctRe.ReplaceAllString(ln, "$1")
		ln = spaceAfterOpen.ReplaceAllString(ln, "$1")
		ln = spaceBeforeShut.ReplaceAllString(ln, "$1")
		lines[i] = strings.TrimSpace(ln)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
