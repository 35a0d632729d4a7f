package document

import "fmt"

// Freshness markers, a closed set drawn from the quality-tier glyphs.
const (
	TauPlatinum = "◊⁺⁺"
	TauGold     = "◊⁺"
	TauSilver   = "◊"
)

// Evidence attests the quality of a Full-tier conversion.
type Evidence struct {
	// Delta is the weighted average confidence across all converted
	// clauses (the ambiguity/confidence figure of the evidence line).
	Delta float64 `json:"delta"`
	// Phi is the output-to-input token ratio, in percent.
	Phi int `json:"phi"`
	// Tau is the freshness marker.
	Tau string `json:"tau"`
	// Verdict is true iff Delta reached the confidence threshold.
	// Reported, never fatal.
	Verdict bool `json:"verdict"`
}

// freshness maps confidence to a marker deterministically.
func freshness(delta float64) string {
	switch {
	case delta >= 0.8:
		return TauPlatinum
	case delta >= 0.5:
		return TauGold
	default:
		return TauSilver
	}
}

// wire renders the evidence line. Must stay byte-stable: golden files and
// the documented wire format depend on this exact layout.
func (e Evidence) wire() string {
	verdict := "invalid"
	if e.Verdict {
		verdict = "valid"
	}
	return fmt.Sprintf("⟦Ε⟧⟨δ≜%.2f;φ≜%d;τ≜%s;⊢%s;∎⟩", e.Delta, e.Phi, e.Tau, verdict)
}
