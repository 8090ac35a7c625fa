package gen

// Override optionally replaces a composite generator's default for one
// declared field. It is a tagged variant: unset (the zero value), a fixed
// value, or a replacement generator. A single Override carries at most one
// generator, so ambiguous shapes such as a pair of generators cannot be
// expressed.
//
// Resolution is lazy: constructing or resolving an Override never draws a
// sample.
type Override[T any] struct {
	set bool
	g   Gen[T]
}

// Value returns an override pinning the field to v: every sample drawn from
// the resolved generator yields exactly v.
func Value[T any](v T) Override[T] {
	return Override[T]{set: true, g: Const(v)}
}

// With returns an override replacing the field's default generator with g.
// The resolved generator is g itself, not a copy of its distribution, so a
// stateful replacement keeps its state across draws.
func With[T any](g Gen[T]) Override[T] {
	return Override[T]{set: true, g: g}
}

// IsSet reports whether the override was supplied.
func (o Override[T]) IsSet() bool {
	return o.set
}

// Or resolves the override against the field's default generator: an unset
// override returns def unchanged, otherwise the supplied replacement is
// returned verbatim.
func (o Override[T]) Or(def Gen[T]) Gen[T] {
	if !o.set {
		return def
	}
	return o.g
}
