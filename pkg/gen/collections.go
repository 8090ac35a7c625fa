package gen

import (
	"fmt"
	mathrand "math/rand/v2"
)

// sizeIn draws a collection size from [minLen, maxLen] with a quadratic bias
// toward the small end, so wide declared bounds stay tractable while the full
// range remains reachable.
func sizeIn(r *mathrand.Rand, minLen, maxLen int) int {
	if maxLen <= minLen {
		return minLen
	}
	f := r.Float64()
	n := minLen + int(f*f*float64(maxLen-minLen+1))
	if n > maxLen {
		n = maxLen
	}
	return n
}

// SliceOfN returns a generator of slices of exactly n elements drawn from g.
func SliceOfN[T any](g Gen[T], n int) Gen[[]T] {
	if n < 0 {
		panic(fmt.Sprintf("gen: SliceOfN with negative length %d", n))
	}
	return New(func(r *mathrand.Rand) ([]T, error) {
		out := make([]T, n)
		for i := range out {
			v, err := g.Sample(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	})
}

// SliceOf returns a generator of slices whose length is drawn from
// [minLen, maxLen] and whose elements are drawn from g. Panics on inverted
// or negative bounds.
func SliceOf[T any](g Gen[T], minLen, maxLen int) Gen[[]T] {
	if maxLen < minLen || minLen < 0 {
		panic(fmt.Sprintf("gen: SliceOf length bounds invalid: [%d, %d]", minLen, maxLen))
	}
	return New(func(r *mathrand.Rand) ([]T, error) {
		return SliceOfN(g, sizeIn(r, minLen, maxLen)).Sample(r)
	})
}

// UniqueSliceOf is like SliceOf but guarantees no two elements share the same
// key. Each element position retries up to DefaultRetryBudget times before
// the draw fails with an error wrapping ErrRetryBudget.
func UniqueSliceOf[T any, K comparable](g Gen[T], key func(T) K, minLen, maxLen int) Gen[[]T] {
	if maxLen < minLen || minLen < 0 {
		panic(fmt.Sprintf("gen: UniqueSliceOf length bounds invalid: [%d, %d]", minLen, maxLen))
	}
	return New(func(r *mathrand.Rand) ([]T, error) {
		n := sizeIn(r, minLen, maxLen)
		out := make([]T, 0, n)
		seen := make(map[K]struct{}, n)
		for len(out) < n {
			var v T
			ok := false
			for i := 0; i < DefaultRetryBudget; i++ {
				cand, err := g.Sample(r)
				if err != nil {
					return nil, err
				}
				if _, dup := seen[key(cand)]; !dup {
					v, ok = cand, true
					break
				}
			}
			if !ok {
				return nil, fmt.Errorf("gen: no fresh key for element %d after %d attempts: %w", len(out), DefaultRetryBudget, ErrRetryBudget)
			}
			seen[key(v)] = struct{}{}
			out = append(out, v)
		}
		return out, nil
	})
}
