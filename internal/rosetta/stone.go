package rosetta

// DefaultEntries returns the built-in Rosetta Stone glossary.
//
// Registration order is load-bearing: when two registered phrases collide on
// the same text (true synonyms such as "minus" or "either"), the earlier
// registration wins forward lookups. The first phrase of each group is the
// canonical reverse phrase, chosen so that converting it back always
// reproduces the symbol.
func DefaultEntries() []Entry {
	var entries []Entry
	group := func(symbol string, cat Category, phrases ...string) {
		for i, p := range phrases {
			entries = append(entries, Entry{
				Phrase:    p,
				Symbol:    symbol,
				Category:  cat,
				Canonical: i == 0,
			})
		}
	}
	synonyms := func(symbol string, cat Category, phrases ...string) {
		for _, p := range phrases {
			entries = append(entries, Entry{Phrase: p, Symbol: symbol, Category: cat})
		}
	}

	// Quantifiers
	group("∀", CategoryQuantifier, "for all", "for every", "every", "all", "each", "any")
	group("∃", CategoryQuantifier, "there exists", "exists", "some", "at least one", "there is")
	group("∃!", CategoryQuantifier, "exists unique", "exactly one", "unique", "one and only one", "exists exactly one")
	group("∄", CategoryQuantifier, "does not exist", "no such", "none exists")

	// Logic
	group("∧", CategoryLogic, "and", "both", "as well as", "together with", "also")
	group("∨", CategoryLogic, "or", "either", "alternatively", "otherwise")
	group("¬", CategoryLogic, "not", "negation", "isn't", "is not", "doesn't", "does not")
	group("⇒", CategoryLogic, "implies", "if then", "therefore", "then", "consequently", "so", "hence")
	group("⇔", CategoryLogic, "if and only if", "iff", "equivalent to", "is equivalent", "exactly when")
	group("→", CategoryLogic, "to", "returns", "maps to", "yields", "produces", "goes to")
	group("↔", CategoryLogic, "bidirectional", "two-way", "both ways")
	group("⊕", CategoryLogic, "xor", "exclusive or", "either but not both")

	// Comparison
	group(">", CategoryComparison, "greater than", "more than", "exceeds", "above", "larger than")
	group("<", CategoryComparison, "less than", "fewer than", "below", "smaller than", "under")
	group("≥", CategoryComparison, "greater than or equal", "at least", "no less than", "minimum", ">=")
	group("≤", CategoryComparison, "less than or equal", "at most", "no more than", "maximum", "<=")
	group("≡", CategoryComparison, "identical to", "equals", "is equal to", "same as", "equivalent", "===", "==")
	group("≢", CategoryComparison, "not identical", "not equal", "differs from", "different from", "!==", "!=")
	group("≈", CategoryComparison, "approximately", "roughly", "about", "nearly")

	// Definition
	group("≜", CategoryDefinition, "defined as", "is defined as", "equals by definition", "is a", "means", "definition")
	group("≔", CategoryDefinition, "assigned", "set to", "becomes", "gets", "is assigned", ":=")
	group("↦", CategoryDefinition, "mapsto", "maps to", "sends to")

	// Functions
	group("λ", CategoryFunction, "lambda", "function", "anonymous function", "fn", "func", "=>")
	group("∘", CategoryFunction, "compose", "composed with", "followed by")
	group("fix", CategoryFunction, "fixpoint", "recursive", "fixed point")
	group("μ", CategoryFunction, "least fixpoint", "lfp", "mu")

	// Sets
	group("∈", CategorySet, "in", "element of", "member of", "belongs to", "is in")
	group("∉", CategorySet, "not in", "not element of", "not member of", "outside")
	group("⊆", CategorySet, "subset", "subset of", "contained in", "part of")
	group("⊇", CategorySet, "superset", "superset of", "contains")
	group("⊂", CategorySet, "proper subset", "strict subset")
	group("⊃", CategorySet, "proper superset", "strict superset")
	group("∪", CategorySet, "union", "combined with", "merged with")
	group("∩", CategorySet, "intersection", "overlapping with", "common to", "shared by")
	group("∅", CategorySet, "empty", "empty set", "null", "nothing", "nil", "void")
	group("𝒫", CategorySet, "powerset", "power set", "all subsets")
	group("∖", CategorySet, "set difference", "minus", "except", "without")
	group("𝔾", CategorySet, "graph", "network", "structure")

	// Contracts
	group("Δ", CategoryMath, "delta", "difference", "change", "increment")
	group("Pre", CategorySpecial, "precondition", "requires", "before")
	group("Post", CategorySpecial, "postcondition", "ensures", "after", "guarantees")
	group("Inv", CategorySpecial, "invariant", "always true", "maintained")

	// Intents
	group("Ψ", CategorySpecial, "intent", "goal", "purpose", "objective")
	synonyms("μ", CategoryFunction, "fitness", "utility", "score", "metric")
	group("Target", CategorySpecial, "target", "aim", "destination")

	// Types
	group("ℕ", CategoryType, "natural", "natural number", "positive integer", "nat", "natural numbers", "unsigned")
	group("ℤ", CategoryType, "integer", "int", "whole number", "integers", "signed integer")
	group("ℝ", CategoryType, "real", "real number", "float", "decimal", "double", "number")
	group("ℚ", CategoryType, "rational", "rational number", "fraction")
	group("𝔹", CategoryType, "boolean", "bool", "true or false", "binary", "flag")
	group("𝕊", CategoryType, "string", "str", "text", "char sequence", "varchar")
	group("ℂ", CategoryType, "complex", "complex number")
	group("List", CategoryType, "list", "array", "sequence", "vector")
	group("Maybe", CategoryType, "maybe", "optional", "nullable", "option")
	group("Either", CategoryType, "union type", "either", "result")

	// Truth values
	group("⊤", CategoryTruth, "true", "top", "yes", "valid", "correct", "success", "ok")
	group("⊥", CategoryTruth, "false", "bottom", "no", "invalid", "incorrect", "failure", "crash", "error")

	// Proofs and assertions
	group("∎", CategorySpecial, "qed", "proven", "end of proof", "proved", "done")
	group("⊢", CategorySpecial, "proves", "entails", "derives", "turnstile", "yields")
	group("⊨", CategorySpecial, "models", "satisfies", "validates")
	group("□", CategorySpecial, "necessarily", "always", "box")
	group("◇", CategorySpecial, "possibly", "eventually", "diamond")

	// Math operators
	group("+", CategoryMath, "plus", "added to", "sum of", "add")
	group("−", CategoryMath, "subtract", "minus", "subtracted from")
	group("×", CategoryMath, "times", "multiplied by", "product of", "multiply")
	group("÷", CategoryMath, "divided by", "over", "ratio of", "divide")
	group("²", CategoryMath, "squared", "square of", "to the power of 2")
	group("³", CategoryMath, "cubed", "cube of", "to the power of 3")
	group("√", CategoryMath, "square root", "sqrt", "root of")
	group("Σ", CategoryMath, "sum", "summation", "sigma")
	group("Π", CategoryMath, "product", "pi", "prod")
	group("∞", CategoryMath, "infinity", "infinite", "unbounded")

	// Block markers
	group("⟦Ω⟧", CategoryBlock, "meta block", "metadata", "foundation")
	group("⟦Σ⟧", CategoryBlock, "types block", "type definitions", "glossary")
	group("⟦Γ⟧", CategoryBlock, "rules block", "business rules", "constraints")
	group("⟦Λ⟧", CategoryBlock, "functions block", "function definitions", "lambdas")
	group("⟦Χ⟧", CategoryBlock, "errors block", "error handling", "exceptions")
	group("⟦Ε⟧", CategoryBlock, "evidence block", "proof", "validation")

	// Tuple delimiters ⟨ ⟩ are deliberately absent: the reverse path treats
	// them as block structure, so they are never vocabulary.

	// Quality tiers
	group("◊⁺⁺", CategoryTier, "platinum", "platinum tier", "optimal")
	group("◊⁺", CategoryTier, "gold", "gold tier", "production ready")
	group("◊", CategoryTier, "silver", "silver tier", "good")
	group("◊⁻", CategoryTier, "bronze", "bronze tier", "acceptable")
	group("⊘", CategoryTier, "reject", "rejected", "invalid tier")

	return entries
}
