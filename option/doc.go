// Package option provides a generic optional value: Some(v) or None.
//
// Option is the result domain of every checked arithmetic operation in this
// module. A present value means the operation succeeded; None means the
// result was unrepresentable or undefined. Absence carries no cause; that
// collapse is deliberate (see the cheque package docs).
//
// # Usage
//
//	o := option.Some(42)
//	if v, ok := o.Unwrap(); ok {
//	    fmt.Println(v)
//	}
//
//	total := option.None[int]().Or(0)
//
// Options marshal to JSON as null (None) or the bare value (Some).
package option
