package junction

import (
	"cmp"
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
)

// All makes a junction that collapses comparisons with the all quantifier.
// The elements are copied into owned storage, deduplicated and ascending,
// which lets most comparisons check boundary elements only.
func All[E cmp.Ordered](vs ...E) Junction[E] { return makeOwned(QuantifierAll, vs) }

// Any makes a junction that collapses comparisons with the any quantifier.
// Storage works as with All.
func Any[E cmp.Ordered](vs ...E) Junction[E] { return makeOwned(QuantifierAny, vs) }

// One makes a junction that collapses comparisons with the one quantifier.
// Storage works as with All.
func One[E cmp.Ordered](vs ...E) Junction[E] { return makeOwned(QuantifierOne, vs) }

// None makes a junction that collapses comparisons with the none quantifier.
// Storage works as with All.
func None[E cmp.Ordered](vs ...E) Junction[E] { return makeOwned(QuantifierNone, vs) }

// BorrowAll makes an all junction over the given slice without copying it.
// Construction is constant time, but the junction reflects later changes to the slice,
// the caller must keep the slice alive while the junction is in use,
// and comparisons scan instead of checking boundary elements.
func BorrowAll[E cmp.Ordered](vs []E) Junction[E] { return makeBorrowed(QuantifierAll, vs) }

// BorrowAny makes an any junction over the given slice without copying it.
// Lifetime and mutation caveats match BorrowAll's.
func BorrowAny[E cmp.Ordered](vs []E) Junction[E] { return makeBorrowed(QuantifierAny, vs) }

// BorrowOne makes a one junction over the given slice without copying it.
// Lifetime and mutation caveats match BorrowAll's.
// Duplicates in the slice still count as a single distinct value.
func BorrowOne[E cmp.Ordered](vs []E) Junction[E] { return makeBorrowed(QuantifierOne, vs) }

// BorrowNone makes a none junction over the given slice without copying it.
// Lifetime and mutation caveats match BorrowAll's.
func BorrowNone[E cmp.Ordered](vs []E) Junction[E] { return makeBorrowed(QuantifierNone, vs) }

// AllSeq collects the sequence into the owned storage of an all junction.
func AllSeq[E cmp.Ordered](itr iter.Seq[E]) Junction[E] { return makeCollected(QuantifierAll, itr) }

// AnySeq collects the sequence into the owned storage of an any junction.
func AnySeq[E cmp.Ordered](itr iter.Seq[E]) Junction[E] { return makeCollected(QuantifierAny, itr) }

// OneSeq collects the sequence into the owned storage of a one junction.
func OneSeq[E cmp.Ordered](itr iter.Seq[E]) Junction[E] { return makeCollected(QuantifierOne, itr) }

// NoneSeq collects the sequence into the owned storage of a none junction.
func NoneSeq[E cmp.Ordered](itr iter.Seq[E]) Junction[E] { return makeCollected(QuantifierNone, itr) }

// AllSorted adopts a strictly ascending slice as the owned storage of an all junction,
// skipping both the copy and the sort of All.
// The caller hands over ownership and must not use the slice afterwards.
// It panics with ErrNotSorted when the slice is unsorted or has duplicates.
func AllSorted[E cmp.Ordered](vs []E) Junction[E] { return makeAdopted(QuantifierAll, vs) }

// AnySorted adopts a strictly ascending slice as the owned storage of an any junction.
// Ownership and the ErrNotSorted panic work as with AllSorted.
func AnySorted[E cmp.Ordered](vs []E) Junction[E] { return makeAdopted(QuantifierAny, vs) }

// OneSorted adopts a strictly ascending slice as the owned storage of a one junction.
// Ownership and the ErrNotSorted panic work as with AllSorted.
func OneSorted[E cmp.Ordered](vs []E) Junction[E] { return makeAdopted(QuantifierOne, vs) }

// NoneSorted adopts a strictly ascending slice as the owned storage of a none junction.
// Ownership and the ErrNotSorted panic work as with AllSorted.
func NoneSorted[E cmp.Ordered](vs []E) Junction[E] { return makeAdopted(QuantifierNone, vs) }

func makeOwned[E cmp.Ordered](q Quantifier, vs []E) Junction[E] {
	return Junction[E]{quantifier: q, store: newSortedStore(slices.Clone(vs))}
}

func makeBorrowed[E cmp.Ordered](q Quantifier, vs []E) Junction[E] {
	return Junction[E]{quantifier: q, store: borrowedStore[E]{elements: vs}}
}

func makeCollected[E cmp.Ordered](q Quantifier, itr iter.Seq[E]) Junction[E] {
	return Junction[E]{quantifier: q, store: newSortedStore(iterkit.Collect(itr))}
}

func makeAdopted[E cmp.Ordered](q Quantifier, vs []E) Junction[E] {
	return Junction[E]{quantifier: q, store: adoptSortedStore(vs)}
}
