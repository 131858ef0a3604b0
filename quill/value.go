package quill

import (
	"fmt"
	"math/big"
)

// Kind represents value types.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt    // signed 64-bit
	KindUint   // unsigned 64-bit, magnitudes above int64 range
	KindBigInt // wider than 64 bits, exact
	KindFloat
	KindStr
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindBigInt:
		return "bigint"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value represents a decoded or encodable JSON value.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	uintVal  uint64
	bigVal   *big.Int
	floatVal float64
	strVal   string

	// Container values
	listVal []*Value
	mapVal  []Member
}

// Member represents a key-value pair in a map. Keys are plain strings;
// short keys produced by the decoder are interned (see KeyCache), but
// equality is always by content, never by backing storage.
type Member struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null returns the null value. The result is a shared immortal
// singleton; callers must not assume a fresh allocation.
func Null() *Value {
	return sharedSingletons().null
}

// Bool returns a boolean value, shared between all callers.
func Bool(v bool) *Value {
	s := sharedSingletons()
	if v {
		return s.trueVal
	}
	return s.falseVal
}

// Int creates a signed 64-bit integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Uint creates an unsigned 64-bit integer value.
func Uint(v uint64) *Value {
	return &Value{kind: KindUint, uintVal: v}
}

// BigInt creates an integer value wider than 64 bits. The Value takes
// ownership of n; callers must not mutate it afterwards.
func BigInt(n *big.Int) *Value {
	return &Value{kind: KindBigInt, bigVal: n}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value. The empty string is a shared singleton.
func Str(v string) *Value {
	if v == "" {
		return sharedSingletons().emptyStr
	}
	return &Value{kind: KindStr, strVal: v}
}

// List creates a list value from elements.
func List(elems ...*Value) *Value {
	return &Value{kind: KindList, listVal: elems}
}

// Map creates a map value from members. Member order is preserved;
// callers are responsible for key uniqueness (the decoder enforces
// last-key-wins on duplicate input keys).
func Map(members ...Member) *Value {
	return &Value{kind: KindMap, mapVal: members}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("quill: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the signed integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("quill: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsUint returns the unsigned integer value.
func (v *Value) AsUint() (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindUint {
		return 0, fmt.Errorf("quill: expected uint, got %s", v.kind)
	}
	return v.uintVal, nil
}

// AsBigInt returns the wide integer value. The result is shared with
// the Value and must not be mutated.
func (v *Value) AsBigInt() (*big.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindBigInt {
		return nil, fmt.Errorf("quill: expected bigint, got %s", v.kind)
	}
	return v.bigVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindFloat {
		return 0, fmt.Errorf("quill: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("quill: nil value")
	}
	if v.kind != KindStr {
		return "", fmt.Errorf("quill: expected str, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindList {
		return nil, fmt.Errorf("quill: expected list, got %s", v.kind)
	}
	return v.listVal, nil
}

// AsMap returns the map members in insertion order.
func (v *Value) AsMap() ([]Member, error) {
	if v == nil {
		return nil, fmt.Errorf("quill: nil value")
	}
	if v.kind != KindMap {
		return nil, fmt.Errorf("quill: expected map, got %s", v.kind)
	}
	return v.mapVal, nil
}

// Get returns the value for a map key, or nil if absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindMap {
		return nil
	}
	for _, m := range v.mapVal {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Len returns the element count for lists and maps, the byte length
// for strings, and 0 otherwise.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	case KindStr:
		return len(v.strVal)
	default:
		return 0
	}
}

// Equal reports whether two values have equal content. Equality never
// depends on identity: an interned key or shared singleton compares
// equal to an independently allocated value with the same content.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v.IsNull() && o.IsNull()
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindUint:
		return v.uintVal == o.uintVal
	case KindBigInt:
		return v.bigVal.Cmp(o.bigVal) == 0
	case KindFloat:
		// NaN != NaN, matching IEEE semantics.
		return v.floatVal == o.floatVal
	case KindStr:
		return v.strVal == o.strVal
	case KindList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(o.mapVal) {
			return false
		}
		for i := range v.mapVal {
			if v.mapVal[i].Key != o.mapVal[i].Key {
				return false
			}
			if !v.mapVal[i].Value.Equal(o.mapVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
