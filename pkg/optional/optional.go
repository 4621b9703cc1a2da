// Package optional provides a present/absent wrapper for feed fields.
//
// RSS elements are frequently missing from real documents. Builders store such
// fields as a Value so that "not set" and "set to the empty string" stay
// distinguishable:
//
//	title := optional.Some("Episode 12")
//	if v, ok := title.Get(); ok {
//	    fmt.Println(v)
//	}
package optional

// Value holds a value of type T that may be absent.
// The zero Value is absent.
type Value[T any] struct {
	value T
	ok    bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

// IsSome reports whether a value is present.
func (v Value[T]) IsSome() bool {
	return v.ok
}

// IsNone reports whether the value is absent.
func (v Value[T]) IsNone() bool {
	return !v.ok
}

// OrElse returns the held value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if v.ok {
		return v.value
	}
	return fallback
}

// NonEmpty returns Some(s) for a non-empty string and None otherwise.
// Parsers represent missing elements as empty strings; this converts them.
func NonEmpty(s string) Value[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}
