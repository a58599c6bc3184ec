package junction

import (
	"cmp"
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrNotSorted is the panic value of the Sorted constructors
// when the slice they are asked to adopt is not strictly ascending.
const ErrNotSorted errorkit.Error = "[junction] adopted slice must be sorted and free of duplicates"

// store is the capability contract between a junction and its element container.
type store[E cmp.Ordered] interface {
	isEmpty() bool
	size() int
	// values exposes the raw elements for scanning. Callers must not mutate them.
	values() []E
	// ordered reports whether values() is strictly ascending,
	// the precondition of the boundary accessors below.
	ordered() bool
	first() E
	second() E      // defined when 2 <= size()
	penultimate() E // defined when 2 <= size()
	last() E
}

// sortedStore exclusively owns a deduplicated, ascending copy of the elements.
type sortedStore[E cmp.Ordered] struct{ elements []E }

// newSortedStore takes ownership of vs, sorting and deduplicating it in place.
func newSortedStore[E cmp.Ordered](vs []E) sortedStore[E] {
	slices.Sort(vs)
	vs = slices.CompactFunc(vs, func(a, b E) bool {
		return compare.IsEqual(cmp.Compare(a, b))
	})
	return sortedStore[E]{elements: vs}
}

// adoptSortedStore takes ownership of an already strictly ascending slice,
// skipping both the copy and the sort.
func adoptSortedStore[E cmp.Ordered](vs []E) sortedStore[E] {
	for i := 1; i < len(vs); i++ {
		if compare.IsMoreOrEqual(cmp.Compare(vs[i-1], vs[i])) {
			panic(ErrNotSorted)
		}
	}
	return sortedStore[E]{elements: vs}
}

func (s sortedStore[E]) isEmpty() bool { return len(s.elements) == 0 }
func (s sortedStore[E]) size() int     { return len(s.elements) }
func (s sortedStore[E]) values() []E   { return s.elements }
func (s sortedStore[E]) ordered() bool { return true }

func (s sortedStore[E]) first() E {
	s.mustHave(1)
	return s.elements[0]
}

func (s sortedStore[E]) second() E {
	s.mustHave(2)
	return s.elements[1]
}

func (s sortedStore[E]) penultimate() E {
	s.mustHave(2)
	return s.elements[len(s.elements)-2]
}

func (s sortedStore[E]) last() E {
	s.mustHave(1)
	return s.elements[len(s.elements)-1]
}

func (s sortedStore[E]) mustHave(n int) {
	if len(s.elements) < n {
		panic(fmt.Sprintf("[junction] boundary element access needs %d element(s), storage has %d", n, len(s.elements)))
	}
}

// borrowedStore references a caller-owned slice without copying, sorting or deduplicating it.
// The caller must keep the slice alive while the junction is in use,
// and must not mutate it while a comparison runs.
type borrowedStore[E cmp.Ordered] struct{ elements []E }

func (s borrowedStore[E]) isEmpty() bool { return len(s.elements) == 0 }
func (s borrowedStore[E]) size() int     { return len(s.elements) }
func (s borrowedStore[E]) values() []E   { return s.elements }
func (s borrowedStore[E]) ordered() bool { return false }

func (s borrowedStore[E]) first() E       { panic(errUnorderedBoundary) }
func (s borrowedStore[E]) second() E      { panic(errUnorderedBoundary) }
func (s borrowedStore[E]) penultimate() E { panic(errUnorderedBoundary) }
func (s borrowedStore[E]) last() E        { panic(errUnorderedBoundary) }

const errUnorderedBoundary = "[junction] boundary element access on unordered storage"
