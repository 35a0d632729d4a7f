package convert

import "unicode"

type tokenKind int

const (
	// tokenSeparator is whitespace or punctuation; passes through verbatim.
	tokenSeparator tokenKind = iota
	// tokenWord is a run of letters, digits, underscores, apostrophes, or
	// inner hyphens ("isn't", "two-way").
	tokenWord
	// tokenOperator is a run of ASCII operator characters, so spellings
	// like ":=", ">=", and "=>" match as single units.
	tokenOperator
)

type token struct {
	Text string
	Kind tokenKind
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' || r == '-'
}

func isOperatorRune(r rune) bool {
	switch r {
	case '=', '!', '<', '>', ':', '+', '*', '/', '|', '&':
		return true
	}
	return false
}

// tokenize splits input into word, operator, and separator tokens. The
// concatenation of all token texts reproduces the input exactly.
func tokenize(input string) []token {
	var toks []token
	runes := []rune(input)

	i := 0
	for i < len(runes) {
		start := i
		switch {
		case isWordRune(runes[i]):
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			toks = append(toks, token{Text: string(runes[start:i]), Kind: tokenWord})
		case isOperatorRune(runes[i]):
			for i < len(runes) && isOperatorRune(runes[i]) {
				i++
			}
			toks = append(toks, token{Text: string(runes[start:i]), Kind: tokenOperator})
		default:
			for i < len(runes) && !isWordRune(runes[i]) && !isOperatorRune(runes[i]) {
				i++
			}
			toks = append(toks, token{Text: string(runes[start:i]), Kind: tokenSeparator})
		}
	}
	return toks
}

// isWhitespace reports whether a separator token is whitespace only.
// Phrases may span whitespace between words but never punctuation.
func isWhitespace(tok token) bool {
	if tok.Kind != tokenSeparator {
		return false
	}
	for _, r := range tok.Text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
