package checked

import "golang.org/x/exp/constraints"

// Add returns a+b. ok is false if the sum overflows T.
func Add[T constraints.Integer](a, b T) (sum T, ok bool) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Sub returns a-b. ok is false if the difference overflows T,
// notably for unsigned T when a < b.
func Sub[T constraints.Integer](a, b T) (diff T, ok bool) {
	diff = a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

// Mul returns a*b. ok is false if the product overflows T.
func Mul[T constraints.Integer](a, b T) (product T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product = a * b
	// Dividing the product back recovers a unless the multiplication
	// wrapped. The sign comparison catches minT * -1, where the wrapped
	// product divides back cleanly.
	if (product < 0) == ((a < 0) != (b < 0)) && product/b == a {
		return product, true
	}
	return 0, false
}

// Div returns the truncating quotient a/b. ok is false when b is zero and,
// for signed T, when a is the minimum value and b is -1 (the one quotient
// that does not fit in T).
func Div[T constraints.Integer](a, b T) (quotient T, ok bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return a / b, true
}

// Mod returns the truncated remainder a%b, with the same failure domain
// as Div.
func Mod[T constraints.Integer](a, b T) (remainder T, ok bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return a % b, true
}

// Neg returns -a. ok is false for the minimum value, whose negation is
// unrepresentable.
func Neg[T constraints.Signed](a T) (negated T, ok bool) {
	if a != 0 && -a == a {
		return 0, false
	}
	return -a, true
}

// Abs returns the absolute value of a. ok is false for the minimum value.
func Abs[T constraints.Signed](a T) (T, bool) {
	if a >= 0 {
		return a, true
	}
	return Neg(a)
}

// divOverflows reports the signed minT / -1 case. ^T(0) is -1 for signed T;
// a == -a only at zero and the minimum value.
func divOverflows[T constraints.Integer](a, b T) bool {
	return isSigned[T]() && b == ^T(0) && a != 0 && -a == a
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}
