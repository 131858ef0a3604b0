package quill

import (
	"sync"
	"testing"
)

func TestSingletons_SameInstance(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
	}{
		{"null", Null(), Null()},
		{"true", Bool(true), Bool(true)},
		{"false", Bool(false), Bool(false)},
		{"empty string", Str(""), Str("")},
		{"null via Shared", Null(), Shared(SingletonNull)},
		{"true via Shared", Bool(true), Shared(SingletonTrue)},
		{"false via Shared", Bool(false), Shared(SingletonFalse)},
		{"empty string via Shared", Str(""), Shared(SingletonEmptyStr)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a != tt.b {
				t.Errorf("expected the same shared instance, got %p and %p", tt.a, tt.b)
			}
		})
	}
}

func TestSingletons_FreshValuesNotShared(t *testing.T) {
	if Str("x") == Str("x") {
		t.Error("non-empty strings must be freshly allocated")
	}
	if List() == List() {
		t.Error("empty lists must be freshly allocated")
	}
	if Map() == Map() {
		t.Error("empty maps must be freshly allocated")
	}
}

func TestSingletons_ConcurrentFirstUse(t *testing.T) {
	const goroutines = 32

	var wg sync.WaitGroup
	got := make([]*Value, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Shared(SingletonTrue)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if got[i] != got[0] {
			t.Fatalf("goroutine %d saw a different instance", i)
		}
	}
}
