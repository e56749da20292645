package sorter_test

import (
	"math/rand"
	"testing"

	"github.com/DRSN-tech/sneakers-store/pkg/sorter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   int
	index int
}

func pairKey(p pair) int { return p.key }

func randomPairs(rng *rand.Rand, n int) []pair {
	pairs := make([]pair, n)
	for i := range pairs {
		// узкий диапазон ключей даёт много дубликатов
		pairs[i] = pair{key: rng.Intn(5) - 2, index: i}
	}
	return pairs
}

func TestByKeyEmpty(t *testing.T) {
	sorted := sorter.Ascending([]pair{}, pairKey)

	require.NotNil(t, sorted)
	assert.Empty(t, sorted)

	assert.Empty(t, sorter.Ascending[pair, int](nil, pairKey))
}

func TestByKeySingle(t *testing.T) {
	in := []pair{{key: 7, index: 0}}

	assert.Equal(t, in, sorter.Ascending(in, pairKey))
}

func TestByKeyDoesNotMutateInput(t *testing.T) {
	in := []pair{{3, 0}, {1, 1}, {2, 2}}
	orig := append([]pair(nil), in...)

	sorted := sorter.Ascending(in, pairKey)

	assert.Equal(t, orig, in)
	assert.Equal(t, []pair{{1, 1}, {2, 2}, {3, 0}}, sorted)
}

func TestByKeyAllEqualKeepsOrder(t *testing.T) {
	in := []pair{{4, 0}, {4, 1}, {4, 2}, {4, 3}}

	assert.Equal(t, in, sorter.Ascending(in, pairKey))
}

func TestByKeyCustomLess(t *testing.T) {
	in := []string{"ccc", "a", "bb", "dd"}

	sorted := sorter.ByKey(in, func(s string) int { return len(s) }, func(a, b int) bool { return a > b })

	assert.Equal(t, []string{"ccc", "bb", "dd", "a"}, sorted)
}

func TestByKeyComparisonsOnSortedInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	calls := 0

	sorted := sorter.ByKey(in, func(v int) int { return v }, func(a, b int) bool {
		calls++
		return a < b
	})

	assert.Equal(t, in, sorted)
	assert.Equal(t, len(in)-1, calls)
}

func TestByKeyPanicPropagates(t *testing.T) {
	assert.Panics(t, func() {
		sorter.ByKey([]int{1, 2}, func(v int) int {
			if v == 2 {
				panic("bad key")
			}
			return v
		}, func(a, b int) bool { return a < b })
	})
}

func TestByKeyProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 40; n++ {
		in := randomPairs(rng, n)
		sorted := sorter.Ascending(in, pairKey)

		// перестановка
		assert.ElementsMatch(t, in, sorted)

		for i := 1; i < len(sorted); i++ {
			a, b := sorted[i-1], sorted[i]
			// по возрастанию
			assert.LessOrEqual(t, a.key, b.key)
			// устойчивость
			if a.key == b.key {
				assert.Less(t, a.index, b.index)
			}
		}

		// идемпотентность
		assert.Equal(t, sorted, sorter.Ascending(sorted, pairKey))
	}
}

func TestReverse(t *testing.T) {
	in := []int{1, 2, 3}

	assert.Equal(t, []int{3, 2, 1}, sorter.Reverse(in))
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Empty(t, sorter.Reverse([]int{}))
}
