package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/aisp/internal/convert"
	"github.com/roach88/aisp/internal/rosetta"
)

// Notation version emitted in the document header.
const notationVersion = "5.1"

// Default thresholds for document options.
const (
	DefaultAmbiguityThreshold  = 0.02
	DefaultConfidenceThreshold = 0.5
)

// Clock supplies the header date. Injected so output stays byte-stable
// under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options controls document assembly.
type Options struct {
	// Tier forces an output tier; nil means detect from the prose.
	Tier *Tier
	// AmbiguityThreshold is the ceiling asserted in the Ω:Meta block.
	// Nil means DefaultAmbiguityThreshold; an explicit zero is honored.
	AmbiguityThreshold *float64
	// ConfidenceThreshold gates the evidence verdict.
	// Nil means DefaultConfidenceThreshold; an explicit zero is honored.
	ConfidenceThreshold *float64
}

// Document is the result of a tiered conversion.
type Document struct {
	Tier       Tier               `json:"tier"`
	Output     string             `json:"output"`
	Confidence float64            `json:"confidence"`
	TokenRatio int                `json:"token_ratio"`
	Condition  convert.Code       `json:"condition,omitempty"`
	Evidence   *Evidence          `json:"evidence,omitempty"`
	Unmapped   []convert.Unmapped `json:"unmapped,omitempty"`
	Warnings   []convert.Warning  `json:"warnings,omitempty"`
}

// Assembler builds tiered documents over one immutable table.
// Safe for concurrent use.
type Assembler struct {
	conv  *convert.Converter
	clock Clock
}

// NewAssembler creates an assembler. A nil table means the built-in Rosetta
// Stone; a nil clock means wall time.
func NewAssembler(table *rosetta.Table, clock Clock) *Assembler {
	if clock == nil {
		clock = systemClock{}
	}
	return &Assembler{conv: convert.NewConverter(table), clock: clock}
}

// Converter returns the underlying converter.
func (a *Assembler) Converter() *convert.Converter {
	return a.conv
}

// Assemble converts prose into a tiered AISP document. The forward path
// never fails; sparse Full-tier input degrades to Standard with a reported
// condition instead.
func (a *Assembler) Assemble(prose string, opts Options) Document {
	ambiguity := DefaultAmbiguityThreshold
	if opts.AmbiguityThreshold != nil {
		ambiguity = *opts.AmbiguityThreshold
	}
	confThreshold := DefaultConfidenceThreshold
	if opts.ConfidenceThreshold != nil {
		confThreshold = *opts.ConfidenceThreshold
	}

	tier := DetectTier(prose)
	if opts.Tier != nil {
		tier = *opts.Tier
	}

	body := a.conv.Convert(prose)

	// Weighted confidence accumulator across every converted clause.
	weightedSum := body.Confidence * float64(body.TokensTotal)
	weightTotal := float64(body.TokensTotal)

	doc := Document{
		Tier:     tier,
		Unmapped: body.Unmapped,
		Warnings: body.Warnings,
	}

	var types []TypeDecl
	if tier != TierMinimal {
		types = detectTypes(prose)
	}
	var ruleLines []string
	if tier == TierFull {
		for _, clause := range detectRuleClauses(prose) {
			res := a.conv.Convert(clause)
			ruleLines = append(ruleLines, res.AISP)
			weightedSum += res.Confidence * float64(res.TokensTotal)
			weightTotal += float64(res.TokensTotal)
		}
		if len(types) == 0 && len(ruleLines) == 0 {
			tier = TierStandard
			doc.Tier = tier
			doc.Condition = convert.CodeInsufficientStructure
		}
	}

	delta := 1.0
	if weightTotal > 0 {
		delta = weightedSum / weightTotal
	}
	doc.Confidence = delta

	switch tier {
	case TierMinimal:
		doc.Output = body.AISP
	case TierStandard:
		out := a.renderStandardHeader(prose, ambiguity)
		// Detected type declarations surface at Standard too; the block is
		// simply omitted when the prose declares none.
		if len(types) > 0 {
			out += a.renderTypes(types)
		}
		doc.Output = out + body.AISP
	case TierFull:
		out := a.renderStandardHeader(prose, ambiguity)
		out += a.renderTypes(types)
		out += a.renderRules(ruleLines)
		out += "⟦Λ:Funcs⟧{\n  " + body.AISP + "\n}\n\n"

		ev := &Evidence{
			Delta:   delta,
			Tau:     freshness(delta),
			Verdict: delta >= confThreshold,
		}
		// The evidence line renders as a single whitespace-free field, so
		// the finished document's ratio is known before appending it.
		ev.Phi = ratioPercent(len(strings.Fields(prose)), len(strings.Fields(out))+1)
		doc.Evidence = ev
		doc.Output = out + ev.wire()
	}

	doc.TokenRatio = tokenRatio(prose, doc.Output)
	return doc
}

func (a *Assembler) renderStandardHeader(prose string, ambiguity float64) string {
	domain := extractDomain(prose)
	date := a.clock.Now().UTC().Format("2006-01-02")
	ceiling := strconv.FormatFloat(ambiguity, 'g', -1, 64)

	return fmt.Sprintf("𝔸%s.%s@%s\n\n⟦Ω:Meta⟧{\n  domain≜%s\n  version≜1.0.0\n  ∀D∈AISP:Ambig(D)<%s\n}\n\n",
		notationVersion, domain, date, domain, ceiling)
}

func (a *Assembler) renderTypes(types []TypeDecl) string {
	var b strings.Builder
	b.WriteString("⟦Σ:Types⟧{\n")
	if len(types) == 0 {
		b.WriteString("  ∅\n")
	}
	for _, d := range types {
		b.WriteString("  " + d.wire() + "\n")
	}
	b.WriteString("}\n\n")
	return b.String()
}

func (a *Assembler) renderRules(rules []string) string {
	var b strings.Builder
	b.WriteString("⟦Γ:Rules⟧{\n")
	if len(rules) == 0 {
		b.WriteString("  ∅\n")
	}
	for _, r := range rules {
		b.WriteString("  " + r + "\n")
	}
	b.WriteString("}\n\n")
	return b.String()
}

// tokenRatio is φ: output tokens over input tokens, in percent, rounded.
// Whitespace-delimited fields approximate tokens on both sides so symbols
// count the same as words.
func tokenRatio(input, output string) int {
	return ratioPercent(len(strings.Fields(input)), len(strings.Fields(output)))
}

func ratioPercent(in, out int) int {
	if in == 0 {
		return 0
	}
	return int(100*float64(out)/float64(in) + 0.5)
}
