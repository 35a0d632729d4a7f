package document

import (
	"fmt"
	"regexp"
)

// Tier is the document verbosity level.
type Tier string

const (
	TierMinimal  Tier = "minimal"
	TierStandard Tier = "standard"
	TierFull     Tier = "full"
)

// ParseTier converts a flag value to a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierMinimal, TierStandard, TierFull:
		return Tier(s), nil
	}
	return "", fmt.Errorf("invalid tier %q: must be minimal, standard, or full", s)
}

var (
	typeKeywordRe = regexp.MustCompile(`(?i)\b(define|type|class|struct|interface|schema|model|entity)\b`)
	attrListRe    = regexp.MustCompile(`(?i)\bwith\s+\w+((\s*,\s*|\s+and\s+)\w+)*`)
	ruleClauseRe  = regexp.MustCompile(`(?i)(\b(for (all|every|each)|there exists|if and only if|must|always|never|requires?|ensures?)\b|\bif\b.*\bthen\b)`)
)

// DetectTier classifies prose into an output tier.
//
// Advisory only: the heuristics are evaluated in order and the first match
// wins. A definitional keyword with a structured attribute list reaches at
// least Standard; a quantified or conditional clause on top of that reaches
// Full. Callers forcing a tier bypass this entirely.
func DetectTier(prose string) Tier {
	hasType := typeKeywordRe.MatchString(prose) && attrListRe.MatchString(prose)
	hasRule := ruleClauseRe.MatchString(prose)

	switch {
	case hasType && hasRule:
		return TierFull
	case hasType:
		return TierStandard
	default:
		return TierMinimal
	}
}
