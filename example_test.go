package junction_test

import (
	"fmt"

	"go.llib.dev/junction"
)

func ExampleAll() {
	ages := junction.All(23, 34, 45)
	fmt.Println(ages.IsMoreOrEqual(18)) // is every participant an adult
	fmt.Println(ages.IsMore(40))
	// Output:
	// true
	// false
}

func ExampleAny() {
	j := junction.Any(1, 2)
	fmt.Println(j.IsEqual(2))
	fmt.Println(j.IsNotEqual(2)) // 1 still differs from 2
	// Output:
	// true
	// true
}

func ExampleOne() {
	j := junction.One(2, 5, 98, 4)
	fmt.Println(j.IsLess(3)) // only 2 is below 3
	fmt.Println(j.IsLess(5)) // both 2 and 4 are below 5
	// Output:
	// true
	// false
}

func ExampleNone() {
	j := junction.None(1, 4, 2, 8, 5, 7)
	fmt.Println(j.IsMore(8))
	// Output:
	// true
}

func ExampleVal() {
	fmt.Println(junction.Val(3).IsLess(junction.All(6, 7)))
	// Output:
	// true
}

func ExampleMap() {
	names := junction.All("Fred", "Jim", "Sheila")
	lengths := junction.Map(names, func(name string) int { return len(name) })
	fmt.Println(lengths)
	// Output:
	// all(3, 4, 6)
}

func ExampleIsJunction() {
	fmt.Println(junction.IsJunction(junction.Any(1, 2, 3)))
	fmt.Println(junction.IsJunction(42))
	// Output:
	// true
	// false
}

func ExampleBorrowAny() {
	latencies := []int{120, 250}
	alert := junction.BorrowAny(latencies)
	fmt.Println(alert.IsMore(300))
	latencies[1] = 450 // junction sees the update
	fmt.Println(alert.IsMore(300))
	// Output:
	// false
	// true
}

func ExampleAllSorted() {
	// the slice is adopted as-is and must already be strictly ascending
	j := junction.AllSorted([]int{1, 2, 3})
	fmt.Println(j.IsLess(4))
	// Output:
	// true
}

func ExampleIsEqual() {
	a := junction.All(5)
	b := junction.One(5, 6)
	fmt.Println(junction.IsEqual(a, b)) // exactly one element of b matches each element of a
	// Output:
	// true
}

func ExampleJunction_Iter() {
	for v := range junction.Any(3, 1, 2).Iter() {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}
