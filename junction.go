// Package junction implements quantified comparison values.
//
// A junction pairs a collection of elements with a quantifier,
// and answers the six relational comparisons (<, <=, ==, !=, >=, >)
// by quantifying the element-wise comparison results,
// instead of comparing a single value:
//
//	junction.All(1, 3, 7, 8).IsLess(10)  // true, every element is less than ten
//	junction.Any(1, 2).IsEqual(2)        // true, an element equals two
//	junction.One(2, 5, 98, 4).IsLess(3)  // true, exactly one element is less than three
//	junction.None(1, 4, 2, 8).IsMore(8)  // true, no element is more than eight
//
// Each operator quantifies on its own.
// For example IsEqual and IsNotEqual are not complements of each other:
//
//	junction.Any(1, 2).IsEqual(2)    // true, because of the element 2
//	junction.Any(1, 2).IsNotEqual(2) // also true, because of the element 1
//
// Comparing two junctions quantifies both sides.
// The left junction's quantifier ranges over its elements,
// and each element is compared against the right junction with the right junction's own quantifier:
//
//	junction.IsMore(junction.Any(2, 3, 4), junction.All(0, 1)) // true, 2 is more than both 0 and 1
//
// A scalar can take the left-hand side of a comparison through Val:
//
//	junction.Val(42).IsMore(junction.All(1, 2, 3)) // true, 42 is more than every element
//
// # Storage
//
// The copying constructors (All, Any, One, None, and their Seq variants)
// store a deduplicated, ascending copy of the elements.
// Such owned storage lets most comparisons run on one or two boundary elements
// instead of scanning the whole collection.
//
// The Borrow constructors reference the caller's slice without copying it.
// Borrowing costs nothing at construction time,
// and the junction reflects later changes to the slice.
// The caller must keep the slice alive while the junction is in use.
// Comparisons over borrowed storage always scan.
//
// The Sorted constructors adopt a slice that is already strictly ascending,
// combining owned-storage comparisons with copy-free construction.
//
// All comparisons, sorting and deduplication follow the total order of cmp.Compare,
// so the outcome of a comparison never depends on the storage choice.
package junction

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/zerokit"
)

// Quantifier tells how the element-wise comparison results of a junction
// collapse into a single boolean.
type Quantifier string

const (
	// QuantifierNone collapses to true when no element satisfies the comparison.
	// An empty none junction is vacuously true.
	QuantifierNone Quantifier = "none"
	// QuantifierOne collapses to true when exactly one distinct element satisfies the comparison.
	// An empty one junction is false.
	QuantifierOne Quantifier = "one"
	// QuantifierAny collapses to true when at least one element satisfies the comparison.
	// An empty any junction is false.
	QuantifierAny Quantifier = "any"
	// QuantifierAll collapses to true when every element satisfies the comparison.
	// An empty all junction is vacuously true.
	QuantifierAll Quantifier = "all"
)

var _ = enum.Register[Quantifier](
	QuantifierNone,
	QuantifierOne,
	QuantifierAny,
	QuantifierAll,
)

// Junction is an immutable comparison value over a collection of elements.
// Use the package level constructors to make one.
// The zero value behaves as an empty all junction.
type Junction[E cmp.Ordered] struct {
	quantifier Quantifier
	store      store[E]
}

// isJunction marks every Junction instantiation for IsJunction,
// keeping the set of junction types closed.
func (Junction[E]) isJunction() {}

type junctionMarker interface{ isJunction() }

// IsJunction reports whether v is a junction, regardless of its element type.
// Generic code can use it to apply junction comparison rules
// only when exactly one operand is a junction.
func IsJunction(v any) bool {
	_, ok := v.(junctionMarker)
	return ok
}

// Quantifier reports which quantifier the junction collapses with.
func (j Junction[E]) Quantifier() Quantifier { return j.quant() }

// IsEmpty reports whether the junction has no elements.
func (j Junction[E]) IsEmpty() bool { return j.storage().isEmpty() }

// Len returns the number of stored elements.
// Owned storage is deduplicated, so Len counts distinct values there,
// while borrowed storage counts the referenced slice as is.
func (j Junction[E]) Len() int { return j.storage().size() }

// IsOrdered reports whether the backing storage is sorted and deduplicated,
// which is what allows comparisons to check boundary elements only.
func (j Junction[E]) IsOrdered() bool { return j.storage().ordered() }

// Iter yields the elements in storage order,
// ascending for owned storage and source order for borrowed storage.
func (j Junction[E]) Iter() iter.Seq[E] { return iterkit.Slice(j.storage().values()) }

// ToSlice returns a copy of the elements in storage order.
func (j Junction[E]) ToSlice() []E { return slices.Clone(j.storage().values()) }

// String formats the junction as its quantifier followed by the stored elements,
// for example "any(1, 2, 3)".
func (j Junction[E]) String() string {
	var b strings.Builder
	b.WriteString(string(j.quant()))
	b.WriteByte('(')
	for i, v := range j.storage().values() {
		if 0 < i {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(')')
	return b.String()
}

func (j Junction[E]) quant() Quantifier {
	return zerokit.Coalesce(j.quantifier, QuantifierAll)
}

func (j Junction[E]) storage() store[E] {
	if j.store == nil {
		return sortedStore[E]{}
	}
	return j.store
}
