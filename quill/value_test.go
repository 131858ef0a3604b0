package quill

import (
	"math/big"
	"testing"
)

func TestValue_KindAndAccessors(t *testing.T) {
	big127, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	tests := []struct {
		name string
		v    *Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"true", Bool(true), KindBool},
		{"int", Int(-42), KindInt},
		{"uint", Uint(18446744073709551615), KindUint},
		{"bigint", BigInt(big127), KindBigInt},
		{"float", Float(3.25), KindFloat},
		{"str", Str("hello"), KindStr},
		{"list", List(Int(1), Int(2)), KindList},
		{"map", Map(Member{Key: "a", Value: Int(1)}), KindMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Fatalf("Kind() = %s, want %s", got, tt.kind)
			}
		})
	}

	if b, err := Bool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool() = %v, %v", b, err)
	}
	if _, err := Bool(true).AsInt(); err == nil {
		t.Errorf("AsInt() on bool should fail")
	}
	if i, err := Int(-42).AsInt(); err != nil || i != -42 {
		t.Errorf("AsInt() = %v, %v", i, err)
	}
	if u, err := Uint(18446744073709551615).AsUint(); err != nil || u != 18446744073709551615 {
		t.Errorf("AsUint() = %v, %v", u, err)
	}
	if s, err := Str("hello").AsStr(); err != nil || s != "hello" {
		t.Errorf("AsStr() = %q, %v", s, err)
	}
	if n, err := BigInt(big127).AsBigInt(); err != nil || n.Cmp(big127) != 0 {
		t.Errorf("AsBigInt() = %v, %v", n, err)
	}
}

func TestValue_NilReceiver(t *testing.T) {
	var v *Value
	if !v.IsNull() {
		t.Error("nil value should be null")
	}
	if v.Kind() != KindNull {
		t.Errorf("nil Kind() = %s", v.Kind())
	}
	if _, err := v.AsBool(); err == nil {
		t.Error("AsBool() on nil should fail")
	}
}

func TestValue_Equal(t *testing.T) {
	bigA, _ := new(big.Int).SetString("18446744073709551616", 10)
	bigB, _ := new(big.Int).SetString("18446744073709551616", 10)

	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"null null", Null(), Null(), true},
		{"null vs nil", Null(), nil, true},
		{"bool same", Bool(true), Bool(true), true},
		{"bool diff", Bool(true), Bool(false), false},
		{"int same", Int(7), Int(7), true},
		{"int vs uint", Int(7), Uint(7), false},
		{"bigint independent allocs", BigInt(bigA), BigInt(bigB), true},
		{"str shared vs fresh", Str(""), &Value{kind: KindStr}, true},
		{"list same", List(Int(1), Str("x")), List(Int(1), Str("x")), true},
		{"list len diff", List(Int(1)), List(Int(1), Int(2)), false},
		{
			"map ordered",
			Map(Member{"a", Int(1)}, Member{"b", Int(2)}),
			Map(Member{"a", Int(1)}, Member{"b", Int(2)}),
			true,
		},
		{
			"map order matters",
			Map(Member{"a", Int(1)}, Member{"b", Int(2)}),
			Map(Member{"b", Int(2)}, Member{"a", Int(1)}),
			false,
		},
		{"float nan", Float(nan()), Float(nan()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_MapGet(t *testing.T) {
	m := Map(Member{"a", Int(1)}, Member{"b", Str("x")})
	if got := m.Get("b"); got == nil || !got.Equal(Str("x")) {
		t.Errorf("Get(b) = %v", got)
	}
	if got := m.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if Int(3).Get("a") != nil {
		t.Error("Get on non-map should return nil")
	}
}

func TestValue_Len(t *testing.T) {
	if got := List(Int(1), Int(2), Int(3)).Len(); got != 3 {
		t.Errorf("list Len() = %d", got)
	}
	if got := Str("abcd").Len(); got != 4 {
		t.Errorf("str Len() = %d", got)
	}
	if got := Int(5).Len(); got != 0 {
		t.Errorf("int Len() = %d", got)
	}
}
