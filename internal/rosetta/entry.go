package rosetta

// Category classifies a mapping entry. Every symbol belongs to exactly one
// category; the category of an entry is determined by its symbol.
type Category string

const (
	CategoryQuantifier Category = "quantifier"
	CategoryLogic      Category = "logic"
	CategoryComparison Category = "comparison"
	CategoryDefinition Category = "definition"
	CategoryFunction   Category = "function"
	CategorySet        Category = "set"
	CategoryType       Category = "type"
	CategoryTruth      Category = "truth"
	CategorySpecial    Category = "special"
	CategoryMath       Category = "math"
	CategoryBlock      Category = "block"
	CategoryTier       Category = "tier"
)

// ValidCategories defines the allowed entry categories.
var ValidCategories = map[Category]bool{
	CategoryQuantifier: true,
	CategoryLogic:      true,
	CategoryComparison: true,
	CategoryDefinition: true,
	CategoryFunction:   true,
	CategorySet:        true,
	CategoryType:       true,
	CategoryTruth:      true,
	CategorySpecial:    true,
	CategoryMath:       true,
	CategoryBlock:      true,
	CategoryTier:       true,
}

// Entry is a single prose-phrase → symbol mapping.
//
// Phrase is matched case-insensitively and may span multiple words.
// Precedence breaks ties between equal-length phrases registered for the
// same text; higher wins, then registration order.
type Entry struct {
	Phrase     string   `json:"phrase" yaml:"phrase"`
	Symbol     string   `json:"symbol" yaml:"symbol"`
	Category   Category `json:"category" yaml:"category"`
	Precedence int      `json:"precedence,omitempty" yaml:"precedence,omitempty"`
	Canonical  bool     `json:"canonical,omitempty" yaml:"canonical,omitempty"`
}

// Match is the result of a forward lookup.
type Match struct {
	Entry Entry
	// Words is the number of input words consumed by the match.
	Words int
	// Ambiguous reports that another entry of equal phrase length mapped
	// the same words to a different symbol. The returned entry won by
	// precedence and registration order.
	Ambiguous bool
}
