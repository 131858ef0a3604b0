package quill

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// Stream writer configurations. Indented output reuses the backend's
// indention support rather than post-processing the buffer.
var (
	encodeAPI = jsoniter.Config{
		EscapeHTML: false,
	}.Froze()
	encodeIndentAPI = jsoniter.Config{
		EscapeHTML:    false,
		IndentionStep: 2,
	}.Froze()
)

// Marshal serializes a value as compact JSON.
func Marshal(v *Value) ([]byte, error) {
	return MarshalWithOptions(v, 0)
}

// MarshalWithOptions serializes a value under the given option flags.
func MarshalWithOptions(v *Value, opts Options) ([]byte, error) {
	api := encodeAPI
	if opts.has(OptIndent2) {
		api = encodeIndentAPI
	}
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	if err := writeValue(stream, v, opts); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// writeValue serializes one value into the stream. Containers are
// walked here; scalar handling delegates to the float serializer and
// the integer formatters.
func writeValue(stream *jsoniter.Stream, v *Value, opts Options) error {
	if v == nil {
		stream.WriteNil()
		return nil
	}
	switch v.kind {
	case KindNull:
		stream.WriteNil()

	case KindBool:
		if v.boolVal {
			stream.WriteTrue()
		} else {
			stream.WriteFalse()
		}

	case KindInt:
		stream.WriteInt64(v.intVal)

	case KindUint:
		stream.WriteUint64(v.uintVal)

	case KindBigInt:
		// Exact decimal text; the same lossless intermediate the
		// decoder materializes from.
		stream.WriteRaw(v.bigVal.String())

	case KindFloat:
		buf, err := appendFloat(nil, v.floatVal, opts)
		if err != nil {
			return err
		}
		stream.WriteRaw(string(buf))

	case KindStr:
		stream.WriteString(v.strVal)

	case KindList:
		if len(v.listVal) == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		stream.WriteArrayStart()
		for i, elem := range v.listVal {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeValue(stream, elem, opts); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()

	case KindMap:
		if len(v.mapVal) == 0 {
			stream.WriteEmptyObject()
			return nil
		}
		members := v.mapVal
		if opts.has(OptSortKeys) {
			members = append([]Member(nil), members...)
			sort.Slice(members, func(i, j int) bool {
				return members[i].Key < members[j].Key
			})
		}
		stream.WriteObjectStart()
		for i, m := range members {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key)
			if err := writeValue(stream, m.Value, opts); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	}
	return nil
}
