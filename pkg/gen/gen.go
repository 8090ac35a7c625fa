package gen

import (
	"errors"
	"fmt"
	mathrand "math/rand/v2"
)

// DefaultRetryBudget is the number of attempts Filter and the unique
// collection combinators make before giving up on a draw.
const DefaultRetryBudget = 100

// ErrRetryBudget is returned (wrapped) when a filtered or uniqueness-bound
// generator cannot produce an acceptable value within its retry budget.
var ErrRetryBudget = errors.New("retry budget exhausted")

// Gen produces randomly sampled values of type T. The zero Gen is invalid;
// construct one with New or the combinators in this package.
type Gen[T any] struct {
	sample func(r *mathrand.Rand) (T, error)
}

// New wraps a raw sampling function as a generator. The function must be pure
// apart from consuming randomness from r.
func New[T any](sample func(r *mathrand.Rand) (T, error)) Gen[T] {
	return Gen[T]{sample: sample}
}

// Sample draws one value from the generator using r as the randomness source.
func (g Gen[T]) Sample(r *mathrand.Rand) (T, error) {
	return g.sample(r)
}

// NewRand creates a seeded randomness source for reproducible sampling.
// Draws from generators given equally-seeded sources yield identical values.
func NewRand(seed uint64) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(seed, 0))
}

// Const returns a generator that always yields v, however many times sampled.
func Const[T any](v T) Gen[T] {
	return New(func(*mathrand.Rand) (T, error) {
		return v, nil
	})
}

// OneOf returns a generator choosing uniformly among the given values.
// Panics if no values are given.
func OneOf[T any](choices ...T) Gen[T] {
	if len(choices) == 0 {
		panic("gen: OneOf requires at least one choice")
	}
	return New(func(r *mathrand.Rand) (T, error) {
		return choices[r.IntN(len(choices))], nil
	})
}

// Union returns a generator that picks one of the given generators uniformly
// and draws from it. Panics if no generators are given.
func Union[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("gen: Union requires at least one generator")
	}
	return New(func(r *mathrand.Rand) (T, error) {
		return gens[r.IntN(len(gens))].Sample(r)
	})
}

// Map transforms every sampled value through f.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return New(func(r *mathrand.Rand) (U, error) {
		v, err := g.Sample(r)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}

// Bind draws from g and feeds the value into f to obtain the generator for
// the final draw. This is the dependent-composition primitive: the second
// distribution may depend on the first value.
func Bind[T, U any](g Gen[T], f func(T) Gen[U]) Gen[U] {
	return New(func(r *mathrand.Rand) (U, error) {
		v, err := g.Sample(r)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v).Sample(r)
	})
}

// Filter restricts g to values satisfying pred. Each draw retries up to
// DefaultRetryBudget times; exhausting the budget yields an error wrapping
// ErrRetryBudget rather than recursing forever.
func Filter[T any](g Gen[T], pred func(T) bool) Gen[T] {
	return New(func(r *mathrand.Rand) (T, error) {
		var zero T
		for i := 0; i < DefaultRetryBudget; i++ {
			v, err := g.Sample(r)
			if err != nil {
				return zero, err
			}
			if pred(v) {
				return v, nil
			}
		}
		return zero, fmt.Errorf("gen: filter predicate not satisfied after %d attempts: %w", DefaultRetryBudget, ErrRetryBudget)
	})
}
