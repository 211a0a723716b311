// Package reference holds the immutable lookup tables the calculators read:
// tiered point grids, record-book minimums, tax rates and daily values.
// Nothing in this package is mutated after initialization.
package reference

// Band is one tier of an ordered lookup table. Tables list bands from the
// highest threshold down and a value selects the first band it clears.
// Strict bands require the value to exceed the threshold; the others accept
// equality.
type Band[T any] struct {
	Threshold float64
	Strict    bool
	Value     T
}

func (b Band[T]) clears(v float64) bool {
	if b.Strict {
		return v > b.Threshold
	}
	return v >= b.Threshold
}

// Lookup returns the value of the first band v clears, or fallback when v
// sits below every band.
func Lookup[T any](bands []Band[T], v float64, fallback T) T {
	for _, b := range bands {
		if b.clears(v) {
			return b.Value
		}
	}
	return fallback
}

// steps builds a non-strict table from threshold/value pairs given highest
// first.
func steps[T any](pairs ...stepPair[T]) []Band[T] {
	bands := make([]Band[T], len(pairs))
	for i, p := range pairs {
		bands[i] = Band[T]{Threshold: p.at, Value: p.value}
	}
	return bands
}

type stepPair[T any] struct {
	at    float64
	value T
}

func at[T any](threshold float64, value T) stepPair[T] {
	return stepPair[T]{at: threshold, value: value}
}
