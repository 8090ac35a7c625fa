package gen

import (
	"fmt"
	mathrand "math/rand/v2"
	"time"
)

// IntRange returns a generator of ints uniform over [lo, hi], both inclusive.
// Panics if hi < lo.
func IntRange(lo, hi int) Gen[int] {
	if hi < lo {
		panic(fmt.Sprintf("gen: IntRange bounds inverted: [%d, %d]", lo, hi))
	}
	return New(func(r *mathrand.Rand) (int, error) {
		return lo + r.IntN(hi-lo+1), nil
	})
}

// Int64Range returns a generator of int64s uniform over [lo, hi], both
// inclusive. Panics if hi < lo.
func Int64Range(lo, hi int64) Gen[int64] {
	if hi < lo {
		panic(fmt.Sprintf("gen: Int64Range bounds inverted: [%d, %d]", lo, hi))
	}
	return New(func(r *mathrand.Rand) (int64, error) {
		return lo + r.Int64N(hi-lo+1), nil
	})
}

// Bool returns a generator of booleans with equal probability for each value.
func Bool() Gen[bool] {
	return New(func(r *mathrand.Rand) (bool, error) {
		return r.IntN(2) == 1, nil
	})
}

// Byte returns a generator uniform over all byte values.
func Byte() Gen[byte] {
	return New(func(r *mathrand.Rand) (byte, error) {
		return byte(r.IntN(256)), nil
	})
}

// TimeRange returns a generator of instants uniform over [lo, hi] at
// millisecond resolution, both inclusive. Panics if hi is before lo.
func TimeRange(lo, hi time.Time) Gen[time.Time] {
	if hi.Before(lo) {
		panic(fmt.Sprintf("gen: TimeRange bounds inverted: [%s, %s]", lo, hi))
	}
	loMs, hiMs := lo.UnixMilli(), hi.UnixMilli()
	return New(func(r *mathrand.Rand) (time.Time, error) {
		return time.UnixMilli(loMs + r.Int64N(hiMs-loMs+1)).UTC(), nil
	})
}
