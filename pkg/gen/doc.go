// Package gen provides a small composable random-value generator abstraction
// used to synthesize test fixtures.
//
// A Gen[T] is a pure sampling function over an explicit *rand.Rand: drawing
// from the same generator with an equally-seeded source reproduces the same
// values. Generators compose through Map, Bind, Filter and the collection
// combinators, so structured values with inter-field constraints can be built
// by construction rather than by post-hoc validation.
//
// Basic usage:
//
//	r := gen.NewRand(42)
//	port := gen.IntRange(1024, 65535)
//	addr := gen.Map(port, func(p int) string {
//	    return fmt.Sprintf("127.0.0.1:%d", p)
//	})
//	s, err := addr.Sample(r)
//
// Filtering is bounded: a predicate that cannot be satisfied within the retry
// budget surfaces ErrRetryBudget instead of looping forever.
//
// # Overrides
//
// Override[T] lets a caller replace any declared field of a composite
// generator with either a fixed value or a replacement generator:
//
//	fleet.NewDevice(fleet.DeviceParams{
//	    ID: gen.Value(myID),               // every sample uses myID
//	    Interfaces: gen.With(myIfaceGen),  // replacement distribution
//	})
//
// The zero Override is unset and leaves the default generator untouched.
package gen
