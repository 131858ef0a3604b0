package quill

// Options is a bitset of independent encode switches. Flags compose
// with bitwise OR; no flag excludes another.
type Options uint32

const (
	// OptDisallowNaN substitutes null for NaN and ±Infinity instead of
	// failing the encode.
	OptDisallowNaN Options = 1 << iota

	// OptSanitizeNonFinite likewise substitutes null for non-finite
	// floats. It is a distinct flag from OptDisallowNaN for
	// compatibility with callers that set either; when both are set
	// the effect is identical to either alone.
	OptSanitizeNonFinite

	// OptSortKeys serializes map members in ascending key order
	// instead of insertion order.
	OptSortKeys

	// OptIndent2 pretty-prints output with two-space indentation.
	OptIndent2
)

func (o Options) has(flag Options) bool {
	return o&flag != 0
}
