// SPDX-License-Identifier: MIT
package sorting_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/sorting"
)

var sorters = map[string]func([]float64) []float64{
	"bubble":    sorting.Bubble[float64],
	"insertion": sorting.Insertion[float64],
	"selection": sorting.Selection[float64],
	"merge":     sorting.Merge[float64],
}

func TestSortersFixedCases(t *testing.T) {
	cases := map[string][]float64{
		"empty":      {},
		"single":     {3},
		"sorted":     {1, 2, 3, 4},
		"reversed":   {4, 3, 2, 1},
		"duplicates": {5, 2, 5, 1, 2},
		"negatives":  {0, -1.5, 2.25, -10, 7},
		"mixed":      {5, 2, 1, 3, 6, 4},
	}
	for name, sort := range sorters {
		for cname, in := range cases {
			t.Run(name+"/"+cname, func(t *testing.T) {
				want := slices.Clone(in)
				slices.Sort(want)
				arr := slices.Clone(in)
				got := sort(arr)
				assert.Equal(t, want, got)
				assert.Equal(t, want, arr, "must sort in place")
			})
		}
	}
}

func TestSortersRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for name, sort := range sorters {
		for n := 0; n < 64; n += 7 {
			in := make([]float64, n)
			for i := range in {
				in[i] = float64(rng.Intn(20) - 10)
			}
			want := slices.Clone(in)
			slices.Sort(want)
			require.Equal(t, want, sort(slices.Clone(in)), "%s n=%d", name, n)
		}
	}
}

func TestGenericStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sorting.Merge([]string{"c", "a", "b"}))
	assert.Equal(t, []string{"a", "b", "c"}, sorting.Bubble([]string{"b", "c", "a"}))
}

func ExampleMerge() {
	fmt.Println(sorting.Merge([]int{5, 2, 1, 3, 6, 4}))
	// Output:
	// [1 2 3 4 5 6]
}

func ExampleSelection() {
	fmt.Println(sorting.Selection([]float64{2.5, -1, 0}))
	// Output:
	// [-1 0 2.5]
}
