// Package search finds the transition point of a monotonic predicate over
// float32 values.
package search

const (
	// Limit bounds the exponential probe. When the step grows past it the
	// search gives up and FirstTrue returns Limit with ok == false.
	Limit float32 = 2e9

	// Margin is added to the located transition so the returned value sits
	// on the true side of the predicate.
	Margin float32 = 1e-4
)

// FirstTrue returns the smallest value greater than start for which pred
// holds, to within tol. pred must be false-then-true over the probed range.
//
// The range is first bracketed by probing start+1, start+3, start+7, ...
// (the step doubles each time), then narrowed by bisection.
func FirstTrue(start float32, pred func(float32) bool, tol float32) (float32, bool) {
	val := start
	var d float32 = 1

	for !pred(val + d) {
		val += d
		d *= 2
		if d > Limit {
			return Limit, false
		}
	}

	left, right := val, val+d
	for right-left > tol {
		mid := (left + right) / 2
		// Float32 spacing can exceed tol for large coordinates.
		if mid == left || mid == right {
			break
		}
		if pred(mid) {
			right = mid
		} else {
			left = mid
		}
	}

	return (left+right)/2 + Margin, true
}
