package junction

import "cmp"

// IsLess collapses "j < k" by quantifying both sides:
// j's quantifier ranges over its elements,
// and each element e resolves "e < k" as "k > e" with k's own quantifier.
//
//	IsLess(Any(a...), Any(b...)) // some a is less than some b
//	IsLess(All(a...), All(b...)) // every a is less than every b
//
// Most pairings still collapse from boundary elements when j's storage is ordered.
// A one junction on the right forces a scan of j,
// since exactly-one matching is not monotonic over a sorted sequence.
func IsLess[E cmp.Ordered](j, k Junction[E]) bool { return collapseJunctions(opLess, j, k) }

// IsLessOrEqual collapses "j <= k" by quantifying both sides.
func IsLessOrEqual[E cmp.Ordered](j, k Junction[E]) bool {
	return collapseJunctions(opLessOrEqual, j, k)
}

// IsEqual collapses "j == k" by quantifying both sides.
//
//	IsEqual(All(a...), One(b...)) // every a equals exactly one distinct b
func IsEqual[E cmp.Ordered](j, k Junction[E]) bool { return collapseJunctions(opEqual, j, k) }

// IsNotEqual collapses "j != k" by quantifying both sides.
func IsNotEqual[E cmp.Ordered](j, k Junction[E]) bool { return collapseJunctions(opNotEqual, j, k) }

// IsMoreOrEqual collapses "j >= k" by quantifying both sides.
func IsMoreOrEqual[E cmp.Ordered](j, k Junction[E]) bool {
	return collapseJunctions(opMoreOrEqual, j, k)
}

// IsMore collapses "j > k" by quantifying both sides.
func IsMore[E cmp.Ordered](j, k Junction[E]) bool { return collapseJunctions(opMore, j, k) }

// IsGreater collapses "j > k" by quantifying both sides.
func IsGreater[E cmp.Ordered](j, k Junction[E]) bool { return IsMore(j, k) }

// IsGreaterOrEqual collapses "j >= k" by quantifying both sides.
func IsGreaterOrEqual[E cmp.Ordered](j, k Junction[E]) bool { return IsMoreOrEqual(j, k) }

func collapseJunctions[E cmp.Ordered](o op, j, k Junction[E]) bool {
	flipped := o.flip()
	return j.collapse(o, kindOf(k), func(e E) bool {
		return k.collapseScalar(flipped, e)
	})
}

// kindOf classifies the right-hand junction by how its quantifier
// bends the per-element predicate of the left-hand side.
func kindOf[E cmp.Ordered](k Junction[E]) rhsKind {
	switch k.quant() {
	case QuantifierNone:
		return rhsInverted
	case QuantifierOne:
		return rhsNonMonotonic
	default:
		return rhsPlain
	}
}
