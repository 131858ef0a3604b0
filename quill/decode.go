package quill

import (
	"io"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// decodeAPI is the backend tokenizer configuration. Numbers are read
// as raw lexemes so the materializer picks the variant, not the
// backend.
var decodeAPI = jsoniter.Config{
	EscapeHTML: false,
	UseNumber:  true,
}.Froze()

// Decoder decodes JSON into Values. A Decoder carries the key cache
// its decodes intern through, making cache lifetime explicit; the
// zero-configuration package entry points share one process-wide
// cache. Safe for concurrent use.
type Decoder struct {
	keys *KeyCache
}

// NewDecoder creates a Decoder interning keys through the given cache.
// A nil cache selects the process-wide default.
func NewDecoder(keys *KeyCache) *Decoder {
	if keys == nil {
		keys = defaultKeys
	}
	return &Decoder{keys: keys}
}

var defaultDecoder = &Decoder{keys: defaultKeys}

// Decode parses data as exactly one JSON value. Trailing non-whitespace
// bytes are an error. See Decoder.Decode.
func Decode(data []byte) (*Value, error) {
	return defaultDecoder.Decode(data)
}

// DecodeNext parses the first complete JSON value in data and reports
// how many bytes it consumed. See Decoder.DecodeNext.
func DecodeNext(data []byte) (*Value, int, error) {
	return defaultDecoder.DecodeNext(data)
}

// Decode parses data as exactly one JSON value, rejecting trailing
// non-whitespace bytes.
func (d *Decoder) Decode(data []byte) (*Value, error) {
	if off, bad := invalidUTF8(data); bad {
		return nil, decodeErrf(ErrorInvalidUTF8, off, "invalid byte sequence")
	}

	// Empty sequences and the empty string dominate some workloads;
	// recognize them without invoking the backend at all. Only valid
	// for whole-buffer decodes: in DecodeNext the same two bytes may
	// be followed by more values.
	if len(data) == 2 {
		switch {
		case data[0] == '[' && data[1] == ']':
			return List(), nil
		case data[0] == '{' && data[1] == '}':
			return Map(), nil
		case data[0] == '"' && data[1] == '"':
			return Shared(SingletonEmptyStr), nil
		}
	}

	v, n, err := d.decodeNext(data)
	if err != nil {
		return nil, err
	}
	if off := firstNonSpace(data, n); off >= 0 {
		return nil, decodeErrf(ErrorTrailingData, off, "unexpected data after value")
	}
	return v, nil
}

// DecodeNext parses the first complete JSON value in data, returning
// it together with the number of bytes consumed (leading whitespace
// included). Re-invoking on data[n:] drains concatenated values.
func (d *Decoder) DecodeNext(data []byte) (*Value, int, error) {
	if off, bad := invalidUTF8(data); bad {
		return nil, 0, decodeErrf(ErrorInvalidUTF8, off, "invalid byte sequence")
	}
	return d.decodeNext(data)
}

func (d *Decoder) decodeNext(data []byte) (*Value, int, error) {
	start := firstNonSpace(data, 0)
	if start < 0 {
		return nil, 0, decodeErrf(ErrorUnterminatedValue, len(data), "unexpected end of input")
	}
	end, derr := scanValueExtent(data, start)
	if derr != nil {
		return nil, 0, derr
	}

	iter := decodeAPI.BorrowIterator(data[start:end])
	defer decodeAPI.ReturnIterator(iter)

	v := d.readValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, 0, &DecodeError{Kind: ErrorUnexpectedToken, Offset: start, err: iter.Error}
	}
	return v, end, nil
}

// readValue builds one value from the backend token stream.
func (d *Decoder) readValue(iter *jsoniter.Iterator) *Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()

	case jsoniter.BoolValue:
		return Bool(iter.ReadBool())

	case jsoniter.StringValue:
		return Str(iter.ReadString())

	case jsoniter.NumberValue:
		v, err := materializeNumber(string(iter.ReadNumber()))
		if err != nil {
			iter.ReportError("number", err.Error())
			return nil
		}
		return v

	case jsoniter.ArrayValue:
		var elems []*Value
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			elems = append(elems, d.readValue(it))
			return it.Error == nil
		})
		return List(elems...)

	case jsoniter.ObjectValue:
		var members []Member
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			k := d.keys.Intern(key)
			members = setMember(members, k, d.readValue(it))
			return it.Error == nil
		})
		return Map(members...)

	default:
		iter.ReportError("readValue", "unexpected token")
		return nil
	}
}

// setMember applies last-key-wins for duplicate member names: the
// value is replaced in place, keeping the position of the first
// occurrence.
func setMember(members []Member, key string, v *Value) []Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = v
			return members
		}
	}
	return append(members, Member{Key: key, Value: v})
}

// ============================================================
// Input Normalization & Extent Scanning
// ============================================================

// invalidUTF8 returns the offset of the first invalid byte sequence.
func invalidUTF8(data []byte) (int, bool) {
	if utf8.Valid(data) {
		return 0, false
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i, true
		}
		i += size
	}
	return len(data), true
}

// firstNonSpace returns the index of the first byte at or after start
// that is not JSON whitespace, or -1 if none remains.
func firstNonSpace(data []byte, start int) int {
	for i := start; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return i
		}
	}
	return -1
}

// scanValueExtent finds the end (exclusive) of the value beginning at
// start. It tracks only structure — container depth and string
// boundaries — leaving grammar validation to the backend; it exists
// because the backend does not report how many bytes a value spans.
func scanValueExtent(data []byte, start int) (int, *DecodeError) {
	switch c := data[start]; {
	case c == '{' || c == '[':
		depth := 0
		for i := start; i < len(data); i++ {
			switch data[i] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return i + 1, nil
				}
			case '"':
				end, ok := scanString(data, i)
				if !ok {
					return 0, decodeErrf(ErrorUnterminatedValue, len(data), "unterminated string")
				}
				i = end - 1
			}
		}
		return 0, decodeErrf(ErrorUnterminatedValue, len(data), "unterminated container")

	case c == '"':
		end, ok := scanString(data, start)
		if !ok {
			return 0, decodeErrf(ErrorUnterminatedValue, len(data), "unterminated string")
		}
		return end, nil

	case c == 't':
		return scanLiteral(data, start, "true")
	case c == 'f':
		return scanLiteral(data, start, "false")
	case c == 'n':
		return scanLiteral(data, start, "null")

	case c == '-' || (c >= '0' && c <= '9'):
		i := start + 1
		for i < len(data) && isNumberByte(data[i]) {
			i++
		}
		return i, nil

	default:
		return 0, decodeErrf(ErrorUnexpectedToken, start, "unexpected byte %q", c)
	}
}

// scanString returns the index past the closing quote of the string
// opening at i.
func scanString(data []byte, i int) (int, bool) {
	for j := i + 1; j < len(data); j++ {
		switch data[j] {
		case '\\':
			j++
		case '"':
			return j + 1, true
		}
	}
	return 0, false
}

func scanLiteral(data []byte, start int, lit string) (int, *DecodeError) {
	if len(data)-start < len(lit) || string(data[start:start+len(lit)]) != lit {
		return 0, decodeErrf(ErrorUnexpectedToken, start, "invalid literal")
	}
	return start + len(lit), nil
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}
