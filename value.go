package junction

import "cmp"

// Val wraps a scalar so it can take the left-hand side of a junction comparison.
//
//	junction.Val(5).IsLess(junction.All(6, 7)) // 5 is less than every element
//
// A value comparison resolves by flipping the operator and the operand order:
// v < j is j > v, v <= j is j >= v, and equality and inequality stay as they are.
func Val[E cmp.Ordered](v E) Value[E] {
	return Value[E]{value: v}
}

// Value is a scalar left-hand operand for junction comparisons.
type Value[E cmp.Ordered] struct{ value E }

// V returns the wrapped scalar.
func (v Value[E]) V() E { return v.value }

// IsLess collapses "v < j" as "j > v".
func (v Value[E]) IsLess(j Junction[E]) bool { return j.IsMore(v.value) }

// IsLessOrEqual collapses "v <= j" as "j >= v".
func (v Value[E]) IsLessOrEqual(j Junction[E]) bool { return j.IsMoreOrEqual(v.value) }

// IsEqual collapses "v == j" as "j == v".
func (v Value[E]) IsEqual(j Junction[E]) bool { return j.IsEqual(v.value) }

// IsNotEqual collapses "v != j" as "j != v".
func (v Value[E]) IsNotEqual(j Junction[E]) bool { return j.IsNotEqual(v.value) }

// IsMoreOrEqual collapses "v >= j" as "j <= v".
func (v Value[E]) IsMoreOrEqual(j Junction[E]) bool { return j.IsLessOrEqual(v.value) }

// IsMore collapses "v > j" as "j < v".
func (v Value[E]) IsMore(j Junction[E]) bool { return j.IsLess(v.value) }

// IsGreater collapses "v > j" as "j < v".
func (v Value[E]) IsGreater(j Junction[E]) bool { return v.IsMore(j) }

// IsGreaterOrEqual collapses "v >= j" as "j <= v".
func (v Value[E]) IsGreaterOrEqual(j Junction[E]) bool { return v.IsMoreOrEqual(j) }
