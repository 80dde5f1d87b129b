package cheque_test

import (
	"fmt"

	"github.com/purpleposeidon/cheque"
	"github.com/purpleposeidon/cheque/checked"
)

// Example demonstrates basic checked arithmetic with absence propagation.
func Example() {
	a := cheque.Wrap(uint8(5))
	b := cheque.Wrap(uint8(20))

	fmt.Println(a.Add(b))
	fmt.Println(b.Mul(b))
	fmt.Println(a.Sub(b))
	fmt.Println(b.DivN(0))
	fmt.Println(a.Sub(b).AddN(1))
	// Output:
	// Some(25)
	// None
	// None
	// None
	// None
}

// Example_rebinding demonstrates switching existing variables to checked
// arithmetic by shadowing them with Let2.
func Example_rebinding() {
	a := uint8(10)
	b := uint8(20)
	{
		a, b := cheque.Let2(a, b)
		fmt.Println(a.Add(b))
		fmt.Println(a.SubN(100))
	}
	// Output:
	// Some(30)
	// None
}

// Example_unwrap demonstrates reading a checked result.
func Example_unwrap() {
	quota := cheque.Wrap(int64(1 << 40))
	used := quota.MulN(1024)

	if v, ok := used.Unwrap(); ok {
		fmt.Println("bytes:", v)
	}
	fmt.Println("fallback:", quota.MulN(1<<30).Or(-1))
	// Output:
	// bytes: 1125899906842624
	// fallback: -1
}

// Example_checked demonstrates the one-shot functions in the checked
// subpackage.
func Example_checked() {
	sum, ok := checked.Add(int8(100), 27)
	fmt.Println(sum, ok)

	_, ok = checked.Add(int8(100), 28)
	fmt.Println(ok)

	n, ok := checked.Cast[uint8](int16(300))
	fmt.Println(n, ok)
	// Output:
	// 127 true
	// false
	// 0 false
}
