package document

import (
	"regexp"
	"strings"
)

// TypeDecl is a type declaration detected in prose.
type TypeDecl struct {
	Name   string
	Fields []Field
}

// Field is a named attribute with its inferred type symbol.
type Field struct {
	Name   string
	Symbol string
}

var (
	typeDeclRe    = regexp.MustCompile(`(?i)\btype\s+([A-Za-z_]\w*)(?:\s+with\s+([^.;\n]+))?`)
	fieldSplitRe  = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+`)
	clauseSplitRe = regexp.MustCompile(`[.;\n]+`)
)

// detectTypes extracts type declarations of the form
// "type Name with field and field" from prose.
func detectTypes(prose string) []TypeDecl {
	var decls []TypeDecl
	for _, m := range typeDeclRe.FindAllStringSubmatch(prose, -1) {
		decl := TypeDecl{Name: m[1]}
		if m[2] != "" {
			for _, f := range fieldSplitRe.Split(strings.TrimSpace(m[2]), -1) {
				f = strings.TrimSpace(f)
				if f == "" {
					continue
				}
				decl.Fields = append(decl.Fields, Field{Name: f, Symbol: fieldSymbol(f)})
			}
		}
		decls = append(decls, decl)
	}
	return decls
}

// fieldSymbol infers a type symbol from an attribute name.
func fieldSymbol(field string) string {
	f := strings.ToLower(field)
	switch {
	case f == "id" || f == "age" || f == "count" || f == "size" || f == "total" ||
		strings.HasSuffix(f, "_id") || strings.HasSuffix(f, "count"):
		return "ℕ"
	case f == "score" || f == "price" || f == "rate" || f == "ratio" || f == "amount":
		return "ℝ"
	case f == "flag" || f == "active" || f == "enabled" || f == "admin" ||
		f == "valid" || f == "deleted" || strings.HasPrefix(f, "is_") ||
		strings.HasPrefix(f, "has_"):
		return "𝔹"
	default:
		return "𝕊"
	}
}

// wire renders a type declaration as a Σ block entry.
func (d TypeDecl) wire() string {
	if len(d.Fields) == 0 {
		return d.Name + "≜⟨⟩"
	}
	parts := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		parts[i] = f.Name + ":" + f.Symbol
	}
	return d.Name + "≜⟨" + strings.Join(parts, ",") + "⟩"
}

// detectRuleClauses splits prose into clauses and keeps the quantified or
// conditional ones, in order of appearance.
func detectRuleClauses(prose string) []string {
	var rules []string
	for _, clause := range clauseSplitRe.Split(prose, -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if ruleClauseRe.MatchString(clause) {
			rules = append(rules, clause)
		}
	}
	return rules
}

// Domain keyword table, checked in priority order.
var domainKeywords = []struct {
	domain string
	words  []string
}{
	{"api", []string{"api", "endpoint"}},
	{"auth", []string{"auth", "login", "password"}},
	{"math", []string{"math", "sum", "calculate"}},
	{"data", []string{"database", "store", "persist"}},
	{"io", []string{"file", "read", "write"}},
	{"test", []string{"test", "assert", "expect"}},
	{"user", []string{"user"}},
}

// extractDomain names the subject domain of the prose for the header and
// meta block.
func extractDomain(prose string) string {
	lower := strings.ToLower(prose)
	for _, dk := range domainKeywords {
		for _, w := range dk.words {
			if strings.Contains(lower, w) {
				return dk.domain
			}
		}
	}
	return "domain"
}
