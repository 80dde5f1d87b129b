package option

import "fmt"

// Option represents an optional value: Some(v) holds a value, None holds
// nothing. The zero value is None.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) { return o.v, o.valid }

// MustUnwrap returns the value or panics if the option is empty.
// Use Unwrap or Or when absence is an expected outcome.
func (o Option[T]) MustUnwrap() T {
	if !o.valid {
		panic("option: MustUnwrap on None")
	}
	return o.v
}

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

// OrZero returns the value if present, otherwise the zero value of T.
func (o Option[T]) OrZero() T { return o.v }

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// Map applies f to the value if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.valid {
		return None[U]()
	}
	return Some(f(o.v))
}

// AndThen applies f to the value if present, flattening the result.
// An empty input short-circuits to None.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.valid {
		return None[U]()
	}
	return f(o.v)
}
