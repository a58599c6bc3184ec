package junction

import (
	"cmp"
	"fmt"

	"go.llib.dev/frameless/pkg/compare"
)

// IsLess collapses "junction < v" with the junction's quantifier:
// every element, at least one element, exactly one distinct element,
// or no element is less than v,
// for the all, any, one and none quantifiers respectively.
//
// On ordered storage the answer comes from a boundary element:
// all elements are less than v exactly when the last one is,
// and some element is less than v exactly when the first one is.
func (j Junction[E]) IsLess(v E) bool { return j.collapseScalar(opLess, v) }

// IsLessOrEqual collapses "junction <= v" with the junction's quantifier.
func (j Junction[E]) IsLessOrEqual(v E) bool { return j.collapseScalar(opLessOrEqual, v) }

// IsEqual collapses "junction == v" with the junction's quantifier.
// Equality follows cmp.Compare, so a NaN element equals a NaN argument.
func (j Junction[E]) IsEqual(v E) bool { return j.collapseScalar(opEqual, v) }

// IsNotEqual collapses "junction != v" with the junction's quantifier.
// It quantifies on its own and is not the negation of IsEqual:
// for Any(1, 2) both IsEqual(2) and IsNotEqual(2) hold.
func (j Junction[E]) IsNotEqual(v E) bool { return j.collapseScalar(opNotEqual, v) }

// IsMoreOrEqual collapses "junction >= v" with the junction's quantifier.
func (j Junction[E]) IsMoreOrEqual(v E) bool { return j.collapseScalar(opMoreOrEqual, v) }

// IsMore collapses "junction > v" with the junction's quantifier.
func (j Junction[E]) IsMore(v E) bool { return j.collapseScalar(opMore, v) }

// IsGreater collapses "junction > v" with the junction's quantifier.
func (j Junction[E]) IsGreater(v E) bool { return j.IsMore(v) }

// IsGreaterOrEqual collapses "junction >= v" with the junction's quantifier.
func (j Junction[E]) IsGreaterOrEqual(v E) bool { return j.IsMoreOrEqual(v) }

func (j Junction[E]) collapseScalar(o op, v E) bool {
	return j.collapse(o, rhsPlain, func(e E) bool {
		return o.holds(cmp.Compare(e, v))
	})
}

// op enumerates the six relational comparisons a junction can collapse.
type op int8

const (
	opLess op = iota
	opLessOrEqual
	opEqual
	opNotEqual
	opMoreOrEqual
	opMore
)

// flip mirrors the operator for swapped operand order: v {op} j == j {flip(op)} v.
func (o op) flip() op {
	switch o {
	case opLess:
		return opMore
	case opLessOrEqual:
		return opMoreOrEqual
	case opMoreOrEqual:
		return opLessOrEqual
	case opMore:
		return opLess
	default:
		return o // equality and inequality are symmetric
	}
}

// isEquality tells whether the operator quantifies equality rather than order.
// Equality is not monotonic over a sorted sequence, so it rules out every boundary shortcut.
func (o op) isEquality() bool { return o == opEqual || o == opNotEqual }

// holds evaluates the operator over a three-way comparison result.
func (o op) holds(c int) bool {
	switch o {
	case opLess:
		return compare.IsLess(c)
	case opLessOrEqual:
		return compare.IsLessOrEqual(c)
	case opEqual:
		return compare.IsEqual(c)
	case opNotEqual:
		return !compare.IsEqual(c)
	case opMoreOrEqual:
		return compare.IsMoreOrEqual(c)
	case opMore:
		return compare.IsMore(c)
	default:
		panic(fmt.Sprintf("[junction] unknown comparison operator: %d", o))
	}
}

// rhsKind captures how the right-hand operand bends the per-element predicate,
// which decides whether ordered storage may shortcut and which boundary it inspects.
type rhsKind int8

const (
	// rhsPlain right-hand operands, scalars and all/any junctions,
	// keep the predicate monotonic in the operator's own direction.
	rhsPlain rhsKind = iota
	// rhsInverted right-hand operands, none junctions,
	// invert their element test and with it the direction of the predicate.
	rhsInverted
	// rhsNonMonotonic right-hand operands, one junctions,
	// admit no shortcut: their truth is not monotonic over a sorted sequence.
	rhsNonMonotonic
)

// downward tells whether the predicate favors the small end of an ascending store.
func downward(o op, kind rhsKind) bool {
	d := o == opLess || o == opLessOrEqual
	if kind == rhsInverted {
		d = !d
	}
	return d
}

func shortcut[E cmp.Ordered](st store[E], o op, kind rhsKind) bool {
	return st.ordered() && !o.isEquality() && kind != rhsNonMonotonic
}

// collapse reduces "j {o} right-hand operand" to a boolean,
// with pred holding the comparison of a single element against that operand.
func (j Junction[E]) collapse(o op, kind rhsKind, pred func(E) bool) bool {
	st := j.storage()
	switch q := j.quant(); q {
	case QuantifierAll:
		return collapseAll(st, o, kind, pred)
	case QuantifierAny:
		return collapseAny(st, o, kind, pred)
	case QuantifierNone:
		return !collapseAny(st, o, kind, pred)
	case QuantifierOne:
		return collapseOne(st, o, kind, pred)
	default:
		panic(fmt.Sprintf("[junction] unknown quantifier: %q", q))
	}
}

func collapseAll[E cmp.Ordered](st store[E], o op, kind rhsKind, pred func(E) bool) bool {
	if st.isEmpty() {
		return true
	}
	if shortcut(st, o, kind) {
		// the element most likely to fail decides for every other
		if downward(o, kind) {
			return pred(st.last())
		}
		return pred(st.first())
	}
	for _, e := range st.values() {
		if !pred(e) {
			return false
		}
	}
	return true
}

func collapseAny[E cmp.Ordered](st store[E], o op, kind rhsKind, pred func(E) bool) bool {
	if st.isEmpty() {
		return false
	}
	if shortcut(st, o, kind) {
		// the element most likely to pass decides for every other
		if downward(o, kind) {
			return pred(st.first())
		}
		return pred(st.last())
	}
	for _, e := range st.values() {
		if pred(e) {
			return true
		}
	}
	return false
}

func collapseOne[E cmp.Ordered](st store[E], o op, kind rhsKind, pred func(E) bool) bool {
	if st.isEmpty() {
		return false
	}
	if shortcut(st, o, kind) {
		// matching elements sit together at one end of the ascending store,
		// so exactly one matches when the end element does and its neighbor does not
		if downward(o, kind) {
			return pred(st.first()) && (st.size() < 2 || !pred(st.second()))
		}
		return pred(st.last()) && (st.size() < 2 || !pred(st.penultimate()))
	}
	var (
		matched bool
		match   E
	)
	for _, e := range st.values() {
		if !pred(e) {
			continue
		}
		if matched && !compare.IsEqual(cmp.Compare(match, e)) {
			return false
		}
		matched, match = true, e
	}
	return matched
}
