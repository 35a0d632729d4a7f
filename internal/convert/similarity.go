package convert

import "strings"

// Logic and quantifier vocabulary carries the semantic weight of a
// round-trip; losing "not" matters more than losing "the".
var logicWords = map[string]bool{
	"all": true, "every": true, "exists": true, "some": true, "unique": true,
	"and": true, "or": true, "not": true, "implies": true, "then": true,
	"if": true, "iff": true, "in": true, "equals": true, "defined": true,
	"true": true, "false": true, "for": true, "forall": true,
}

const (
	logicTokenWeight = 2.0
	stopTokenWeight  = 0.5
	plainTokenWeight = 1.0
)

func tokenWeight(word string) float64 {
	switch {
	case logicWords[word]:
		return logicTokenWeight
	case stopWords[word]:
		return stopTokenWeight
	default:
		return plainTokenWeight
	}
}

// Similarity computes a weighted Jaccard score in [0,1] over the lowercase
// token sets of a and b. Used to validate round-trip fidelity; it never
// gates the conversion pipeline itself.
func Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	var intersection, union float64
	for w := range setA {
		if setB[w] {
			intersection += tokenWeight(w)
		}
		union += tokenWeight(w)
	}
	for w := range setB {
		if !setA[w] {
			union += tokenWeight(w)
		}
	}
	if union == 0 {
		return 1.0
	}
	return intersection / union
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenize(s) {
		if tok.Kind == tokenSeparator {
			continue
		}
		set[strings.ToLower(tok.Text)] = true
	}
	return set
}
