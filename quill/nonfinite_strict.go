//go:build !quill_nonfinite

package quill

// Strict-conformance build: with no substitution policy active,
// encoding a non-finite float is a hard error rather than invalid
// JSON.
const nonFiniteTokens = false
