package junction_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/junction"
)

func TestIsLess_betweenJunctions(t *testing.T) {
	t.Run("all against all", func(t *testing.T) {
		assert.True(t, junction.IsLess(junction.All(1, 2), junction.All(5, 6)),
			"every left element is below every right element")
		assert.False(t, junction.IsLess(junction.All(1, 5), junction.All(5, 6)),
			"5 is not below 5")
	})
	t.Run("one on the right side disables the boundary shortcut", func(t *testing.T) {
		// exactly one of {5, 9} is above the left element
		// holds for 6 and 7, but not for 4
		assert.True(t, junction.IsLess(junction.All(6, 7), junction.One(5, 9)))
		assert.False(t, junction.IsLess(junction.All(4, 6), junction.One(5, 9)))
	})
	t.Run("empty right side collapses by vacuous truth", func(t *testing.T) {
		assert.True(t, junction.IsLess(junction.Any(1), junction.None[int]()))
		assert.True(t, junction.IsLess(junction.All[int](), junction.Any(5)))
		assert.False(t, junction.IsLess(junction.Any[int](), junction.Any(5)))
	})
}

func TestIsMore_betweenJunctions(t *testing.T) {
	t.Run("any against any needs a single witness pair", func(t *testing.T) {
		assert.True(t, junction.IsMore(junction.Any(1, 5), junction.Any(3, 4)))
		assert.False(t, junction.IsMore(junction.Any(1, 2), junction.Any(3, 4)))
	})
	t.Run("any against none", func(t *testing.T) {
		// some left element with no right element below it
		assert.True(t, junction.IsMore(junction.Any(2, 3, 4), junction.None(5, 6)))
		assert.False(t, junction.IsMore(junction.Any(6, 7), junction.None(5, 6)))
	})
	t.Run("borrowed left side agrees with owned", func(t *testing.T) {
		owned := junction.Any(2, 3, 4)
		borrowed := junction.BorrowAny([]int{4, 2, 3})
		rhs := junction.None(5, 6)
		assert.Equal(t, junction.IsMore(owned, rhs), junction.IsMore(borrowed, rhs))
	})
}

func TestIsEqual_betweenJunctions(t *testing.T) {
	t.Run("all against one", func(t *testing.T) {
		assert.True(t, junction.IsEqual(junction.All(5), junction.One(5, 6)))
		assert.False(t, junction.IsEqual(junction.All(5, 7), junction.One(5, 6)),
			"7 has no counterpart on the right side")
	})
	t.Run("repeated right elements form a single distinct match", func(t *testing.T) {
		assert.True(t, junction.IsEqual(junction.All(5), junction.BorrowOne([]int{5, 5})))
	})
	t.Run("none against any", func(t *testing.T) {
		assert.True(t, junction.IsEqual(junction.None(1, 2), junction.Any(3, 4)))
		assert.False(t, junction.IsEqual(junction.None(1, 3), junction.Any(3, 4)))
	})
}

func TestIsNotEqual_betweenJunctions(t *testing.T) {
	// one(1, 2) != all(3) fails because both 1 and 2 differ from 3
	assert.False(t, junction.IsNotEqual(junction.One(1, 2), junction.All(3)))
	assert.True(t, junction.IsNotEqual(junction.One(1, 2), junction.All(1)))
}

func TestIsLessOrEqual_betweenJunctions(t *testing.T) {
	assert.True(t, junction.IsLessOrEqual(junction.All(1, 5), junction.All(5, 6)))
	assert.False(t, junction.IsLessOrEqual(junction.All(1, 6), junction.All(5, 6)))
}

func TestIsMoreOrEqual_betweenJunctions(t *testing.T) {
	assert.True(t, junction.IsMoreOrEqual(junction.All(5, 6), junction.Any(5, 9)))
	assert.False(t, junction.IsMoreOrEqual(junction.All(5, 6), junction.All(5, 9)))
}

func TestIsGreater_betweenJunctions(t *testing.T) {
	j, k := junction.Any(1, 5), junction.All(3, 4)
	assert.Equal(t, junction.IsMore(j, k), junction.IsGreater(j, k))
	assert.Equal(t, junction.IsMoreOrEqual(j, k), junction.IsGreaterOrEqual(j, k))
}
