//go:build quill_nonfinite

package quill

// Tolerant build: with no substitution policy active, non-finite
// floats are emitted verbatim as NaN / Infinity / -Infinity. This is a
// documented deviation from strict JSON.
const nonFiniteTokens = true
