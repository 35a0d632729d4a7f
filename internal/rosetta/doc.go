// Package rosetta provides the immutable prose ↔ AISP symbol mapping table.
//
// This package is the foundational layer: all other internal packages import
// rosetta; rosetta imports nothing internal. The table is built once via
// NewTable (or Default) and is read-only afterwards, so it is safe for
// unsynchronized concurrent reads from any number of converters.
//
// Key design constraints:
//   - Many prose phrases may map to one symbol, but exactly one entry per
//     symbol is canonical. The canonical entry is what reverse conversion
//     emits, which is what keeps round-trips stable (anti-drift).
//   - Forward lookup is maximal munch: the longest phrase starting at a
//     position wins. Ties between equal-length phrases resolve by
//     registration order and are reported as ambiguous.
//   - Symbols and phrases are NFC-normalized at registration so that
//     visually identical Unicode input always hits the same entry.
package rosetta
