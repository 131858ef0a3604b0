package quill

import (
	"sync"
)

// ============================================================
// Immortal Singletons
// ============================================================
//
// The literals true, false, null and the canonical empty string are
// shared process-wide. They are initialized exactly once, on first
// demand, and never torn down; after init every access is a pure read.
// Values are immutable, so handing the same pointer to every caller is
// safe under concurrent decode/encode.

// singletonSet holds the shared literal values.
type singletonSet struct {
	null     *Value
	trueVal  *Value
	falseVal *Value
	emptyStr *Value
}

var (
	singletonOnce sync.Once
	singletons    *singletonSet
)

// sharedSingletons returns the process-wide singleton set, initializing
// it on first use. Safe for concurrent first-use from multiple
// goroutines.
func sharedSingletons() *singletonSet {
	singletonOnce.Do(func() {
		singletons = &singletonSet{
			null:     &Value{kind: KindNull},
			trueVal:  &Value{kind: KindBool, boolVal: true},
			falseVal: &Value{kind: KindBool, boolVal: false},
			emptyStr: &Value{kind: KindStr, strVal: ""},
		}
	})
	return singletons
}

// Singleton identifies one of the shared immortal values.
type Singleton uint8

const (
	SingletonNull Singleton = iota
	SingletonTrue
	SingletonFalse
	SingletonEmptyStr
)

// Shared returns the process-wide instance for a singleton literal.
// The same pointer is returned for every call within a process
// lifetime; the value is immutable and must not be modified.
func Shared(s Singleton) *Value {
	set := sharedSingletons()
	switch s {
	case SingletonTrue:
		return set.trueVal
	case SingletonFalse:
		return set.falseVal
	case SingletonEmptyStr:
		return set.emptyStr
	default:
		return set.null
	}
}
