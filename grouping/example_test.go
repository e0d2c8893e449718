package grouping_test

import (
	"fmt"

	"github.com/on-the-ground/underbar/collection"
	"github.com/on-the-ground/underbar/grouping"
)

func ExampleSortBy() {
	type stooge struct {
		Name string
		Age  int
	}
	stooges := collection.Seq[stooge]{{"moe", 40}, {"larry", 50}, {"curly", 60}}

	byName := grouping.SortBy(stooges, func(s stooge) string { return s.Name })
	fmt.Println(byName)
	// Output: [{curly 60} {larry 50} {moe 40}]
}

func ExampleFlatten() {
	fmt.Println(grouping.Flatten([]any{1, []any{2, []any{3, []any{4}}, 5}}))
	// Output: [1 2 3 4 5]
}
