// Package cheque provides checked integer arithmetic with
// propagate-on-failure semantics.
//
// Ordinary Go arithmetic on fixed-width integers wraps silently on overflow
// and panics on division by zero. Cheque replaces both behaviors with an
// optional result: a present value on success, an absent value when the
// result is unrepresentable or undefined.
//
// # Quick Start
//
//	a := cheque.Wrap(uint8(5))
//	b := cheque.Wrap(uint8(20))
//
//	a.Add(b)         // Some(25)
//	b.Mul(b)         // None: 400 does not fit in uint8
//	a.Sub(b)         // None: unsigned underflow
//	b.DivN(0)        // None: division by zero
//	a.Sub(b).AddN(1) // None: absence propagates through the chain
//
// Read results with Unwrap, Or, or Option:
//
//	if v, ok := a.Add(b).Unwrap(); ok {
//	    fmt.Println(v)
//	}
//
// # Rebinding
//
// To switch a set of existing variables to checked arithmetic, shadow them
// at the top of a scope with one of the Let helpers. For the remainder of
// that scope the original names compute through Checked operators; naming a
// variable that is not in scope, or whose type is not a fixed-width integer,
// fails at compile time:
//
//	a, b := readDimensions()
//	{
//	    a, b := cheque.Let2(a, b)
//	    area := a.Mul(b)
//	    ...
//	}
//
// # Failure Model
//
// Overflow, underflow, division by zero and the signed minimum / -1
// quotient all collapse into the same absent outcome. Nothing on the
// arithmetic path panics or returns an error; unwrapping an absent value is
// an explicit caller decision.
//
// Both operands of a binary operation must be the same integer type. The *N
// method variants accept a raw T (typically a literal) on the right-hand
// side. Cross-width movement is explicit via checked.Cast.
//
// Checked values are immutable and safe for concurrent use.
//
// For unwrapped one-shot operations, use the checked subpackage directly.
package cheque
