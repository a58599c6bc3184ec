package junction_test

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/junction"
)

func TestVal(t *testing.T) {
	t.Run("V returns the wrapped scalar", func(t *testing.T) {
		assert.Equal(t, 42, junction.Val(42).V())
		assert.Equal(t, "foo", junction.Val("foo").V())
	})
	t.Run("scalar below every element", func(t *testing.T) {
		ages := junction.All(23, 34, 45)
		assert.True(t, junction.Val(18).IsLessOrEqual(ages))
		assert.True(t, junction.Val(18).IsLess(ages))
		assert.False(t, junction.Val(18).IsMoreOrEqual(ages))
	})
	t.Run("scalar against any", func(t *testing.T) {
		j := junction.Any(3, 9)
		assert.True(t, junction.Val(5).IsLess(j), "9 is a witness above 5")
		assert.True(t, junction.Val(5).IsMore(j), "3 is a witness below 5")
		assert.False(t, junction.Val(5).IsEqual(j))
	})
	t.Run("scalar equality against one", func(t *testing.T) {
		assert.True(t, junction.Val(5).IsEqual(junction.One(5, 6)))
		assert.False(t, junction.Val(7).IsEqual(junction.One(5, 6)))
	})
	t.Run("inequality does not flip", func(t *testing.T) {
		assert.True(t, junction.Val(5).IsNotEqual(junction.None(5)),
			"no element of the junction differs from 5")
		assert.False(t, junction.Val(4).IsNotEqual(junction.None(5)))
	})
	t.Run("greater spellings alias more", func(t *testing.T) {
		v, j := junction.Val(5), junction.Any(3, 9)
		assert.Equal(t, v.IsMore(j), v.IsGreater(j))
		assert.Equal(t, v.IsMoreOrEqual(j), v.IsGreaterOrEqual(j))
	})
}

func TestVal_mirrorsTheFlippedJunctionComparison(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	type mirror struct {
		name      string
		valueSide func(v junction.Value[int], j junction.Junction[int]) bool
		flipped   func(j junction.Junction[int], v int) bool
	}
	mirrors := []mirror{
		{"<", junction.Value[int].IsLess, junction.Junction[int].IsMore},
		{"<=", junction.Value[int].IsLessOrEqual, junction.Junction[int].IsMoreOrEqual},
		{"==", junction.Value[int].IsEqual, junction.Junction[int].IsEqual},
		{"!=", junction.Value[int].IsNotEqual, junction.Junction[int].IsNotEqual},
		{">=", junction.Value[int].IsMoreOrEqual, junction.Junction[int].IsLessOrEqual},
		{">", junction.Value[int].IsMore, junction.Junction[int].IsLess},
	}
	for i := 0; i < 100; i++ {
		v := rnd.IntBetween(-5, 5)
		vs := random.Slice(rnd.IntBetween(0, 5), func() int { return rnd.IntBetween(-5, 5) })
		for _, q := range quantifierTags {
			for name, build := range storages {
				j := build(q, vs...)
				for _, m := range mirrors {
					assert.Equal(t, m.flipped(j, v), m.valueSide(junction.Val(v), j),
						assert.MessageF("%d %s %s %s(%v)", v, m.name, name, q, vs))
				}
			}
		}
	}
}
