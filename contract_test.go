package junction_test

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/junction/junctioncontract"
)

func TestJunction_contract(t *testing.T) {
	c := junctioncontract.Config[int]{
		MakeElement: func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.IntBetween(-10, 10)
		},
	}

	t.Run("owned storage", junctioncontract.Junction(ownedJunction[int], c).Test)

	t.Run("borrowed storage", junctioncontract.Junction(borrowedJunction[int], c).Test)

	t.Run("adopted storage", junctioncontract.Junction(adoptedJunction[int], c).Test)

	t.Run("collected storage", junctioncontract.Junction(collectedJunction[int], c).Test)

	t.Run("string elements", junctioncontract.Junction(ownedJunction[string], junctioncontract.Config[string]{
		MakeElement: func(tb testing.TB) string {
			return testcase.ToT(&tb).Random.StringNC(2, "abc")
		},
	}).Test)
}
