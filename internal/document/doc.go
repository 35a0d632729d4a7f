// Package document assembles tiered AISP documents around the conversion
// core.
//
// A document is built in one of three tiers:
//
//   - Minimal: raw symbol substitution, no blocks.
//   - Standard: header line plus an Ω:Meta block around the minimal body,
//     with a Σ:Types block when the prose declares types.
//   - Full: Standard plus Σ:Types, Γ:Rules, Λ:Funcs, and a trailing
//     evidence record attesting conversion quality.
//
// The tier is detected from the prose unless the caller forces one. A forced
// or detected Full tier still degrades to Standard when the prose contains
// no detectable type or rule content; emitting empty required blocks would
// claim structure that is not there.
//
// Output is byte-stable: identical prose, table, options, and clock date
// produce identical bytes. The clock is injected so tests and golden files
// can pin the header date.
package document
