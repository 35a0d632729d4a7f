// Package convert implements the bidirectional prose ↔ AISP conversion core.
//
// The forward path (Converter.Convert) is a greedy longest-match substituter:
// it scans the word stream left to right, consumes the longest registered
// phrase at each position (maximal munch, non-overlapping), and passes
// everything else through verbatim. Prose is open vocabulary, so the forward
// path never fails; unknown words degrade to pass-through text and are
// reported on the result.
//
// The reverse path (Converter.ToProse) must parse structure, not merely
// substitute tokens: block skeletons (⟦Code:Name⟧{...}, evidence ⟨...⟩
// records) are preserved verbatim and only the content between them is
// translated back to canonical phrases. Unbalanced delimiters are therefore
// a hard error, the only one in this package.
//
// All operations are pure functions over an immutable rosetta.Table and are
// safe for concurrent use.
package convert
