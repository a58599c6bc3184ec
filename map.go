package junction

import (
	"cmp"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Map transforms every element of the junction
// and collects the results into a new junction with the same quantifier.
// The transform may change the element type.
//
//	lengths := junction.Map(junction.All("Fred", "Jim", "Sheila"), func(name string) int {
//		return len(name)
//	}) // all(3, 4, 6)
//
// The result always uses owned storage:
// the image is deduplicated and sorted regardless of how the source junction stores its elements.
func Map[O cmp.Ordered, E cmp.Ordered](j Junction[E], transform func(E) O) Junction[O] {
	return Junction[O]{
		quantifier: j.quant(),
		store:      newSortedStore(iterkit.Collect(iterkit.Map(j.Iter(), transform))),
	}
}
