package quill

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ============================================================
// Numeric Materialization (decode side)
// ============================================================
//
// A numeral lexeme becomes the narrowest adequate variant:
//
//	integral, fits int64            -> KindInt
//	integral, fits uint64 only      -> KindUint
//	integral, wider than 64 bits    -> KindBigInt via the decimal text
//	fraction or exponent present    -> KindFloat (IEEE double)
//
// The decimal lexeme is the lossless intermediate for wide integers;
// big.Int reconstructs the exact value from it, so integers of any
// width round-trip without loss. Float precision is bounded by IEEE
// double width by design.

// materializeNumber converts a raw numeral lexeme into a Value.
func materializeNumber(lexeme string) (*Value, error) {
	if lexeme == "" {
		return nil, fmt.Errorf("empty numeral")
	}
	if strings.ContainsAny(lexeme, ".eE") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			// Out-of-range magnitudes saturate to ±Inf like the
			// reference decoders; anything else is malformed.
			if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
				return nil, fmt.Errorf("invalid numeral %q", lexeme)
			}
		}
		return Float(f), nil
	}

	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err == nil {
		return Int(i), nil
	}
	if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
		return nil, fmt.Errorf("invalid numeral %q", lexeme)
	}

	// Above int64 range. Positive values may still fit uint64.
	if lexeme[0] != '-' {
		u, uerr := strconv.ParseUint(lexeme, 10, 64)
		if uerr == nil {
			return Uint(u), nil
		}
		if ne, ok := uerr.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return nil, fmt.Errorf("invalid numeral %q", lexeme)
		}
	}

	// Wider than 64 bits in either direction: reconstruct exactly from
	// the decimal text.
	n, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		return nil, fmt.Errorf("invalid numeral %q", lexeme)
	}
	return BigInt(n), nil
}

// ============================================================
// Float Serialization (encode side)
// ============================================================

// appendFloat appends the JSON encoding of f to dst. Finite values use
// shortest-round-trip formatting: the emitted numeral parses back to
// the identical bit pattern. Non-finite values follow the option
// policy; with no policy active the outcome depends on the build
// variant (see nonfinite_strict.go / nonfinite_tokens.go).
func appendFloat(dst []byte, f float64, opts Options) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if opts.has(OptDisallowNaN) || opts.has(OptSanitizeNonFinite) {
			return append(dst, "null"...), nil
		}
		if nonFiniteTokens {
			return appendNonFinite(dst, f), nil
		}
		return nil, ErrNonFinite
	}

	// Shortest representation that round-trips, using the abbreviated
	// exponent form for extreme magnitudes.
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// Rewrite e-09 as e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst, nil
}

// appendNonFinite emits the extended literal tokens recognized by
// tolerant parsers. Only reachable in quill_nonfinite builds.
func appendNonFinite(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "Infinity"...)
	default:
		return append(dst, "-Infinity"...)
	}
}
