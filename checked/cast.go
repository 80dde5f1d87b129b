package checked

import "golang.org/x/exp/constraints"

// Cast converts v to type To. ok is false if the value does not fit,
// either because it is out of To's range or because the conversion would
// flip its sign.
func Cast[To, From constraints.Integer](v From) (To, bool) {
	c := To(v)
	if From(c) != v || (c < 0) != (v < 0) {
		return 0, false
	}
	return c, true
}
