package gen

import (
	"errors"
	"testing"
)

func TestSliceOfN_ExactLength(t *testing.T) {
	r := NewRand(1)
	g := SliceOfN(IntRange(0, 9), 7)
	for i := 0; i < 50; i++ {
		s, err := g.Sample(r)
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		if len(s) != 7 {
			t.Fatalf("len = %d, want 7", len(s))
		}
	}
}

func TestSliceOf_LengthWithinBounds(t *testing.T) {
	r := NewRand(2)
	g := SliceOf(Bool(), 2, 6)
	for i := 0; i < 200; i++ {
		s, err := g.Sample(r)
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		if len(s) < 2 || len(s) > 6 {
			t.Fatalf("len = %d, want within [2, 6]", len(s))
		}
	}
}

func TestSliceOf_EmptyAllowed(t *testing.T) {
	r := NewRand(3)
	g := SliceOf(Bool(), 0, 3)
	sawEmpty := false
	for i := 0; i < 300; i++ {
		s, _ := g.Sample(r)
		if len(s) == 0 {
			sawEmpty = true
			break
		}
	}
	if !sawEmpty {
		t.Error("SliceOf(g, 0, 3) never produced an empty slice")
	}
}

func TestUniqueSliceOf_NoKeyCollisions(t *testing.T) {
	r := NewRand(4)
	// Keys collide often (only 20 possible), forcing the retry path.
	g := UniqueSliceOf(IntRange(0, 19), func(n int) int { return n }, 5, 10)
	for i := 0; i < 100; i++ {
		s, err := g.Sample(r)
		if err != nil {
			t.Fatalf("sample failed: %v", err)
		}
		seen := make(map[int]bool, len(s))
		for _, v := range s {
			if seen[v] {
				t.Fatalf("duplicate key %d in %v", v, s)
			}
			seen[v] = true
		}
	}
}

func TestUniqueSliceOf_ExhaustsBudget(t *testing.T) {
	r := NewRand(5)
	// A constant element can never supply a second distinct key.
	g := UniqueSliceOf(Const("same"), func(s string) string { return s }, 2, 2)
	_, err := g.Sample(r)
	if err == nil {
		t.Fatal("uniqueness over a constant generator did not fail")
	}
	if !errors.Is(err, ErrRetryBudget) {
		t.Errorf("error = %v, want ErrRetryBudget", err)
	}
}
