// Package quill implements a high-throughput bridge between JSON text
// and an in-memory value model.
//
// quill is designed to be:
//   - Allocation-shy on hot decode paths (interned object keys,
//     shared literal singletons, empty-document fast paths)
//   - Lossless for integers (64-bit natives, wider values kept exact
//     through a big-integer variant)
//   - Exact for floats (shortest-round-trip numerals)
//   - Policy-driven for non-finite floats on encode
//   - Safe under concurrent decode/encode from multiple goroutines
//
// # Data Model
//
// Scalars: null, bool, int, uint, bigint, float, str
// Containers: list, map (insertion-ordered, unique keys)
//
// # Decoding
//
// Decode consumes a whole buffer and rejects trailing data. DecodeNext
// consumes exactly one value and reports how many bytes it read, so
// concatenated values (for example newline-delimited JSON) can be
// drained from a single buffer:
//
//	v, n, err := quill.DecodeNext(buf)
//	buf = buf[n:]
//
// Object member names up to 64 bytes are deduplicated through a
// fixed-size process-wide cache; the literals true, false, null and
// the empty string are shared immortal singletons.
//
// # Encoding
//
// Marshal serializes a Value back to JSON. Non-finite floats are a
// hard error unless OptDisallowNaN or OptSanitizeNonFinite substitutes
// null, or the quill_nonfinite build tag enables verbatim Infinity/NaN
// tokens.
package quill
