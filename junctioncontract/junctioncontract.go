// Package junctioncontract defines the behavioral contract of the junction comparison algebra.
//
// The laws asserted here hold for every storage strategy,
// so a junction factory backed by owned storage and one backed by borrowed storage
// must both pass the same suite.
package junctioncontract

import (
	"cmp"
	"fmt"
	"slices"
	"testing"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/junction"
)

// MakeJunction builds the junction under test for a given quantifier and element set.
// Implementations decide the storage strategy.
type MakeJunction[E cmp.Ordered] func(q junction.Quantifier, vs ...E) junction.Junction[E]

// Junction returns the contract suite for a junction factory.
func Junction[E cmp.Ordered](make MakeJunction[E], opts ...Option[E]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("an empty junction collapses vacuously", func(t *testcase.T) {
		v := c.makeElement(t)
		for _, q := range quantifiers {
			j := make(q)
			assert.True(t, j.IsEmpty())
			vacuouslyTrue := q == junction.QuantifierAll || q == junction.QuantifierNone
			for _, o := range operators[E]() {
				assert.Equal(t, vacuouslyTrue, o.collapse(j, v),
					assert.MessageF("%s() %s %v", q, o.name, v))
			}
		}
	})

	s.Test("the quantifier tag is reported and the junction is recognizable", func(t *testcase.T) {
		for _, q := range quantifiers {
			j := make(q, c.makeElement(t))
			assert.Equal(t, q, j.Quantifier())
			assert.True(t, junction.IsJunction(j))
		}
		assert.False(t, junction.IsJunction(c.makeElement(t)))
	})

	s.Test("scalar comparisons quantify element-wise", func(t *testcase.T) {
		vs := c.makeElements(t, 1, 7)
		member := t.Random.SliceElement(vs).(E)
		outsider := random.Unique(func() E { return c.makeElement(t) }, vs...)
		for _, v := range []E{member, outsider} {
			for _, q := range quantifiers {
				j := make(q, vs...)
				for _, o := range operators[E]() {
					expected := quantify(q, vs, func(e E) bool { return o.holds(cmp.Compare(e, v)) })
					assert.Equal(t, expected, o.collapse(j, v),
						assert.MessageF("%s(%v) %s %v", q, vs, o.name, v))
				}
			}
		}
	})

	s.Test("none collapses as the negation of any", func(t *testcase.T) {
		vs := c.makeElements(t, 0, 7)
		v := c.makeElement(t)
		for _, o := range operators[E]() {
			assert.Equal(t,
				o.collapse(make(junction.QuantifierNone, vs...), v),
				!o.collapse(make(junction.QuantifierAny, vs...), v),
				assert.MessageF("none/any disagree for %s against %v over %v", o.name, v, vs))
		}
	})

	s.Test("one requires exactly one distinct matching element", func(t *testcase.T) {
		vs := c.makeElements(t, 1, 5)
		vs = append(vs, vs[0]) // a repeated value must not count as a second match
		for _, v := range []E{vs[0], c.makeElement(t)} {
			j := make(junction.QuantifierOne, vs...)
			for _, o := range operators[E]() {
				expected := quantify(junction.QuantifierOne, vs, func(e E) bool { return o.holds(cmp.Compare(e, v)) })
				assert.Equal(t, expected, o.collapse(j, v),
					assert.MessageF("one(%v) %s %v", vs, o.name, v))
			}
		}
	})

	s.Test("a value on the left mirrors the junction comparison", func(t *testcase.T) {
		vs := c.makeElements(t, 0, 7)
		v := c.makeElement(t)
		for _, q := range quantifiers {
			j := make(q, vs...)
			for _, o := range operators[E]() {
				assert.Equal(t, o.mirror(j, v), o.valueSide(v, j),
					assert.MessageF("%v %s %s(%v)", v, o.name, q, vs))
			}
		}
	})

	s.Test("junction to junction comparisons quantify both sides", func(t *testcase.T) {
		as := c.makeElements(t, 0, 5)
		bs := c.makeElements(t, 0, 5)
		for _, qj := range quantifiers {
			for _, qk := range quantifiers {
				j := make(qj, as...)
				k := make(qk, bs...)
				for _, o := range operators[E]() {
					expected := quantify(qj, as, func(a E) bool {
						return quantify(qk, bs, func(b E) bool { return o.holds(cmp.Compare(a, b)) })
					})
					assert.Equal(t, expected, o.cross(j, k),
						assert.MessageF("%s(%v) %s %s(%v)", qj, as, o.name, qk, bs))
				}
			}
		}
	})

	s.Test("mapping keeps the quantifier and collects the distinct transformed elements", func(t *testcase.T) {
		vs := c.makeElements(t, 1, 7)
		constant := c.makeElement(t)
		for _, q := range quantifiers {
			j := make(q, vs...)

			identity := junction.Map(j, func(e E) E { return e })
			assert.Equal(t, q, identity.Quantifier())
			assert.True(t, identity.IsOrdered())
			assert.Equal(t, distinct(vs), identity.ToSlice())

			collapsed := junction.Map(j, func(E) E { return constant })
			assert.Equal(t, q, collapsed.Quantifier())
			assert.Equal(t, []E{constant}, collapsed.ToSlice())
		}
	})

	return s.AsSuite(fmt.Sprintf("Junction[%s]", reflectkit.TypeOf[E]().String()))
}

type Option[E cmp.Ordered] interface{ option.Option[Config[E]] }

type Config[E cmp.Ordered] struct {
	// MakeElement generates one element for the property checks of the contract.
	MakeElement func(tb testing.TB) E
}

var _ Option[int] = Config[int]{}

func (c Config[E]) Configure(o *Config[E]) {
	o.MakeElement = zerokit.Coalesce(c.MakeElement, o.MakeElement)
}

func (c Config[E]) makeElement(tb testing.TB) E {
	if c.MakeElement != nil {
		return c.MakeElement(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[E]()).(E)
}

func (c Config[E]) makeElements(tb testing.TB, min, max int) []E {
	t := testcase.ToT(&tb)
	return random.Slice(t.Random.IntBetween(min, max), func() E {
		return c.makeElement(t)
	})
}

var quantifiers = []junction.Quantifier{
	junction.QuantifierNone,
	junction.QuantifierOne,
	junction.QuantifierAny,
	junction.QuantifierAll,
}

// operator pairs every comparison entry point with its element-wise meaning,
// so the laws above can be stated once for all six comparisons.
type operator[E cmp.Ordered] struct {
	name      string
	holds     func(c int) bool // element-wise comparison over a cmp.Compare result
	collapse  func(j junction.Junction[E], v E) bool
	mirror    func(j junction.Junction[E], v E) bool // the flipped collapse backing the value side
	valueSide func(v E, j junction.Junction[E]) bool
	cross     func(j, k junction.Junction[E]) bool
}

func operators[E cmp.Ordered]() []operator[E] {
	return []operator[E]{
		{
			name:      "<",
			holds:     compare.IsLess,
			collapse:  junction.Junction[E].IsLess,
			mirror:    junction.Junction[E].IsMore,
			valueSide: func(v E, j junction.Junction[E]) bool { return junction.Val(v).IsLess(j) },
			cross:     junction.IsLess[E],
		},
		{
			name:      "<=",
			holds:     compare.IsLessOrEqual,
			collapse:  junction.Junction[E].IsLessOrEqual,
			mirror:    junction.Junction[E].IsMoreOrEqual,
			valueSide: func(v E, j junction.Junction[E]) bool { return junction.Val(v).IsLessOrEqual(j) },
			cross:     junction.IsLessOrEqual[E],
		},
		{
			name:      "==",
			holds:     compare.IsEqual,
			collapse:  junction.Junction[E].IsEqual,
			mirror:    junction.Junction[E].IsEqual,
			valueSide: func(v E, j junction.Junction[E]) bool { return junction.Val(v).IsEqual(j) },
			cross:     junction.IsEqual[E],
		},
		{
			name:      "!=",
			holds:     func(c int) bool { return !compare.IsEqual(c) },
			collapse:  junction.Junction[E].IsNotEqual,
			mirror:    junction.Junction[E].IsNotEqual,
			valueSide: func(v E, j junction.Junction[E]) bool { return junction.Val(v).IsNotEqual(j) },
			cross:     junction.IsNotEqual[E],
		},
		{
			name:      ">=",
			holds:     compare.IsMoreOrEqual,
			collapse:  junction.Junction[E].IsMoreOrEqual,
			mirror:    junction.Junction[E].IsLessOrEqual,
			valueSide: func(v E, j junction.Junction[E]) bool { return junction.Val(v).IsMoreOrEqual(j) },
			cross:     junction.IsMoreOrEqual[E],
		},
		{
			name:      ">",
			holds:     compare.IsMore,
			collapse:  junction.Junction[E].IsMore,
			mirror:    junction.Junction[E].IsLess,
			valueSide: func(v E, j junction.Junction[E]) bool { return junction.Val(v).IsMore(j) },
			cross:     junction.IsMore[E],
		},
	}
}

// quantify is the reference semantics the junction must reproduce:
// a straight evaluation of the predicate over every element.
func quantify[E cmp.Ordered](q junction.Quantifier, vs []E, pred func(E) bool) bool {
	var matching []E
	for _, v := range vs {
		if pred(v) {
			matching = append(matching, v)
		}
	}
	switch q {
	case junction.QuantifierAll:
		return len(matching) == len(vs)
	case junction.QuantifierAny:
		return 0 < len(matching)
	case junction.QuantifierNone:
		return len(matching) == 0
	case junction.QuantifierOne:
		return len(distinct(matching)) == 1
	default:
		panic(fmt.Sprintf("unknown quantifier: %q", q))
	}
}

func distinct[E cmp.Ordered](vs []E) []E {
	vs = slices.Clone(vs)
	slices.Sort(vs)
	return slices.CompactFunc(vs, func(a, b E) bool {
		return compare.IsEqual(cmp.Compare(a, b))
	})
}
