package cheque

import (
	"golang.org/x/exp/constraints"

	"github.com/purpleposeidon/cheque/checked"
	"github.com/purpleposeidon/cheque/option"
)

// Checked wraps an optional integer so that arithmetic on it is
// overflow-checked and absence propagates through chained expressions.
// The zero value is absent.
//
// Checked values are immutable; every method returns a new value.
type Checked[T constraints.Integer] struct {
	o option.Option[T]
}

// Wrap returns a present Checked holding v.
func Wrap[T constraints.Integer](v T) Checked[T] {
	return Checked[T]{o: option.Some(v)}
}

// Lift converts an optional value into the checked domain, so the result
// of a previous operation can keep participating in arithmetic.
func Lift[T constraints.Integer](o option.Option[T]) Checked[T] {
	return Checked[T]{o: o}
}

// Let2 wraps two variables at once. Assigning the results back to the same
// names at the top of a scope shadows the raw bindings, so the remainder of
// the scope computes with checked arithmetic:
//
//	a, b := cheque.Let2(a, b)
func Let2[T constraints.Integer](a, b T) (Checked[T], Checked[T]) {
	return Wrap(a), Wrap(b)
}

// Let3 wraps three variables at once. See Let2.
func Let3[T constraints.Integer](a, b, c T) (Checked[T], Checked[T], Checked[T]) {
	return Wrap(a), Wrap(b), Wrap(c)
}

// Let4 wraps four variables at once. See Let2.
func Let4[T constraints.Integer](a, b, c, d T) (Checked[T], Checked[T], Checked[T], Checked[T]) {
	return Wrap(a), Wrap(b), Wrap(c), Wrap(d)
}

// Add returns c+rhs, or an absent value on overflow or if either operand
// is already absent.
func (c Checked[T]) Add(rhs Checked[T]) Checked[T] { return apply(c, rhs, checked.Add[T]) }

// AddN is Add with a raw right-hand operand.
func (c Checked[T]) AddN(rhs T) Checked[T] { return apply(c, Wrap(rhs), checked.Add[T]) }

// Sub returns c-rhs, or an absent value on overflow or underflow or if
// either operand is already absent.
func (c Checked[T]) Sub(rhs Checked[T]) Checked[T] { return apply(c, rhs, checked.Sub[T]) }

// SubN is Sub with a raw right-hand operand.
func (c Checked[T]) SubN(rhs T) Checked[T] { return apply(c, Wrap(rhs), checked.Sub[T]) }

// Mul returns c*rhs, or an absent value on overflow or if either operand
// is already absent.
func (c Checked[T]) Mul(rhs Checked[T]) Checked[T] { return apply(c, rhs, checked.Mul[T]) }

// MulN is Mul with a raw right-hand operand.
func (c Checked[T]) MulN(rhs T) Checked[T] { return apply(c, Wrap(rhs), checked.Mul[T]) }

// Div returns the truncating quotient c/rhs, or an absent value when rhs is
// zero, when the quotient is unrepresentable, or if either operand is
// already absent.
func (c Checked[T]) Div(rhs Checked[T]) Checked[T] { return apply(c, rhs, checked.Div[T]) }

// DivN is Div with a raw right-hand operand.
func (c Checked[T]) DivN(rhs T) Checked[T] { return apply(c, Wrap(rhs), checked.Div[T]) }

// Option returns the underlying optional value.
func (c Checked[T]) Option() option.Option[T] { return c.o }

// Unwrap returns the value and whether it is present.
func (c Checked[T]) Unwrap() (T, bool) { return c.o.Unwrap() }

// MustUnwrap returns the value or panics if it is absent.
func (c Checked[T]) MustUnwrap() T { return c.o.MustUnwrap() }

// Ok reports whether the value is present.
func (c Checked[T]) Ok() bool { return c.o.IsSome() }

// Or returns the value if present, otherwise fallback.
func (c Checked[T]) Or(fallback T) T { return c.o.Or(fallback) }

// Equal reports whether both values are present and equal, or both absent.
func (c Checked[T]) Equal(rhs Checked[T]) bool {
	lv, lok := c.o.Unwrap()
	rv, rok := rhs.o.Unwrap()
	return lok == rok && lv == rv
}

// EqualN reports whether the value is present and equals rhs.
func (c Checked[T]) EqualN(rhs T) bool {
	v, ok := c.o.Unwrap()
	return ok && v == rhs
}

// String implements fmt.Stringer.
func (c Checked[T]) String() string { return c.o.String() }

func apply[T constraints.Integer](lhs, rhs Checked[T], op func(T, T) (T, bool)) Checked[T] {
	l, lok := lhs.o.Unwrap()
	r, rok := rhs.o.Unwrap()
	if !lok || !rok {
		return Checked[T]{}
	}
	v, ok := op(l, r)
	if !ok {
		return Checked[T]{}
	}
	return Wrap(v)
}
