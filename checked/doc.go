// Package checked provides overflow-checked arithmetic over any fixed-width
// integer type.
//
// Every function returns the result and a boolean in the comma-ok idiom:
// ok is false when the mathematical result is unrepresentable in T or the
// operation is undefined. Failure causes are not distinguished: overflow,
// underflow and division by zero all report the same way.
//
// # Operations
//
//   - Add, Sub, Mul: fail on range overflow, including unsigned underflow
//   - Div, Mod: fail on a zero divisor and the signed minimum / -1 case
//   - Neg, Abs: fail on the signed minimum value
//   - Cast: checked conversion between integer types
//
// # Usage
//
//	sum, ok := checked.Add(a, b)
//	if !ok {
//	    return errBudgetExceeded
//	}
//
// Both operands must be the same type; cross-width arithmetic does not
// compile. Move values between widths explicitly with Cast.
//
// For chained expressions with automatic failure propagation, use the
// Checked wrapper in the root cheque package instead.
package checked
