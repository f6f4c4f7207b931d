// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl_test

import (
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/avl"
)

// shape describes an expected subtree as root key plus child keys.
type shape struct {
	root, left, right int
}

func build(keys ...int) *avl.Tree[int] {
	tr := avl.New[int]()
	for _, k := range keys {
		tr.Insert(k)
	}
	return tr
}

func requireShape(t *testing.T, tr *avl.Tree[int], want shape) {
	t.Helper()
	root := tr.Root()
	require.False(t, root.IsNil(), "root must exist")
	require.Equal(t, want.root, root.Key(), "root key")
	require.Equal(t, want.left, root.Left().Key(), "left child key")
	require.Equal(t, want.right, root.Right().Key(), "right child key")
}

func requireInvariants(t *testing.T, tr *avl.Tree[int]) {
	t.Helper()
	require.NoError(t, tr.Validate())
	require.True(t, tr.IsOrdered(), "order invariant")
	require.True(t, tr.IsBalanced(), "balance invariant")
	require.True(t, tr.HeightsConsistent(), "height invariant")
	require.Equal(t, tr.Len(), tr.Count(), "cached size")
	require.True(t, slices.IsSorted(tr.Keys()), "in-order keys ascending")
}

//----------------------------------------------------------------------------//
// Insert rebalancing
//----------------------------------------------------------------------------//

func TestInsert_RotationCases(t *testing.T) {
	cases := []struct {
		name string
		keys []int
		want shape
		kase avl.Case
	}{
		{"LeftLeft", []int{30, 20, 10}, shape{20, 10, 30}, avl.LeftLeft},
		{"LeftRight", []int{30, 10, 20}, shape{20, 10, 30}, avl.LeftRight},
		{"RightRight", []int{10, 20, 30}, shape{20, 10, 30}, avl.RightRight},
		{"RightLeft", []int{10, 30, 20}, shape{20, 10, 30}, avl.RightLeft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(tc.keys...)
			requireShape(t, tr, tc.want)
			require.Equal(t, 1, tr.Root().Left().Height(), "left child is a leaf")
			require.Equal(t, 1, tr.Root().Right().Height(), "right child is a leaf")
			require.Equal(t, 2, tr.Height())

			stats := tr.Stats()
			require.Equal(t, 1, stats.Insert[tc.kase], "case %v fired once", tc.kase)
			require.Equal(t, 1, stats.Total())
			requireInvariants(t, tr)
		})
	}
}

func TestInsert_FourAscending(t *testing.T) {
	tr := build(10, 20, 30, 40)

	requireShape(t, tr, shape{20, 10, 30})
	right := tr.Root().Right()
	require.Equal(t, 40, right.Right().Key())
	require.True(t, right.Left().IsNil())
	require.Equal(t, 3, tr.Height())
	require.Equal(t, -1, tr.Root().Balance())
	require.Equal(t, 1, tr.Stats().Rotations, "a single rotation at the root")
	requireInvariants(t, tr)
}

func TestInsert_Duplicate(t *testing.T) {
	tr := avl.New[int]()
	require.True(t, tr.Insert(7))
	require.False(t, tr.Insert(7), "duplicate insert is a no-op")

	require.Equal(t, 1, tr.Count())
	n, ok := tr.Search(7)
	require.True(t, ok)
	require.Equal(t, 7, n.Key())
	require.Equal(t, 1, n.Height(), "height unchanged")
}

func TestInsert_DuplicateKeepsHeights(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80, 10)
	before := heights(tr.Root())

	for _, k := range tr.Keys() {
		require.False(t, tr.Insert(k))
	}
	require.Equal(t, before, heights(tr.Root()))
	require.Equal(t, 8, tr.Len())
}

func heights(n avl.Node[int]) map[int]int {
	out := map[int]int{}
	var walk func(avl.Node[int])
	walk = func(n avl.Node[int]) {
		if n.IsNil() {
			return
		}
		out[n.Key()] = n.Height()
		walk(n.Left())
		walk(n.Right())
	}
	walk(n)
	return out
}

//----------------------------------------------------------------------------//
// Delete rebalancing
//----------------------------------------------------------------------------//

func TestDelete_RotationCases(t *testing.T) {
	cases := []struct {
		name   string
		keys   []int
		delete int
		want   shape
		kase   avl.Case
	}{
		{"LeftLeft", []int{30, 20, 40, 10}, 40, shape{20, 10, 30}, avl.LeftLeft},
		{"LeftLeftEvenChild", []int{30, 20, 40, 10, 25}, 40, shape{20, 10, 30}, avl.LeftLeft},
		{"LeftRight", []int{30, 20, 40, 25}, 40, shape{25, 20, 30}, avl.LeftRight},
		{"RightRight", []int{20, 10, 30, 40}, 10, shape{30, 20, 40}, avl.RightRight},
		{"RightRightEvenChild", []int{20, 10, 30, 25, 40}, 10, shape{30, 20, 40}, avl.RightRight},
		{"RightLeft", []int{20, 10, 30, 25}, 10, shape{25, 20, 30}, avl.RightLeft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(tc.keys...)
			tr.ResetStats()

			require.True(t, tr.Delete(tc.delete))
			requireShape(t, tr, tc.want)
			require.Equal(t, 1, tr.Stats().Delete[tc.kase], "case %v fired once", tc.kase)
			require.Equal(t, len(tc.keys)-1, tr.Count())
			requireInvariants(t, tr)
		})
	}
}

func TestDelete_Shapes(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		tr := build(20, 10, 30)
		require.True(t, tr.Delete(10))
		require.True(t, tr.Root().Left().IsNil())
		requireInvariants(t, tr)
	})

	t.Run("OneChild", func(t *testing.T) {
		tr := build(20, 10, 30, 40)
		require.True(t, tr.Delete(30))
		require.Equal(t, 40, tr.Root().Right().Key())
		requireInvariants(t, tr)
	})

	t.Run("TwoChildren", func(t *testing.T) {
		tr := build(20, 10, 30)
		require.True(t, tr.Delete(20))
		require.Equal(t, 30, tr.Root().Key(), "successor replaces the root")
		require.Equal(t, 10, tr.Root().Left().Key())
		require.Equal(t, []int{10, 30}, tr.Keys())
		requireInvariants(t, tr)
	})

	t.Run("OnlyNode", func(t *testing.T) {
		tr := build(5)
		require.True(t, tr.Delete(5))
		require.True(t, tr.Root().IsNil())
		require.Equal(t, 0, tr.Count())
		require.Equal(t, 0, tr.Height())
	})

	t.Run("Missing", func(t *testing.T) {
		tr := build(20, 10, 30)
		before := tr.Keys()
		require.False(t, tr.Delete(99))
		require.False(t, avl.New[int]().Delete(1))
		require.Equal(t, before, tr.Keys())
		requireInvariants(t, tr)
	})
}

// TestDelete_FourNodes removes each key of several four-key trees in turn.
func TestDelete_FourNodes(t *testing.T) {
	orders := [][]int{
		{1, 2, 3, 4}, {4, 3, 2, 1}, {2, 4, 1, 3}, {3, 1, 4, 2}, {1, 4, 2, 3},
	}
	for _, keys := range orders {
		for _, victim := range keys {
			tr := build(keys...)
			require.Equal(t, 4, tr.Count())
			require.True(t, tr.Delete(victim))
			require.Equal(t, 3, tr.Count())
			require.True(t, tr.IsValidBST(-1, 101))
			require.True(t, tr.IsBalanced())
			require.False(t, tr.Contains(victim))
		}
	}
}

//----------------------------------------------------------------------------//
// Reads
//----------------------------------------------------------------------------//

func TestSearch_Empty(t *testing.T) {
	tr := avl.New[int]()
	for _, k := range []int{0, -1, 42} {
		n, ok := tr.Search(k)
		require.False(t, ok)
		require.True(t, n.IsNil())
	}

	var zero avl.Tree[string]
	_, ok := zero.Search("x")
	require.False(t, ok, "zero value tree is empty")
	require.True(t, zero.Insert("x"))
	require.True(t, zero.Contains("x"))
}

func TestNode_Children(t *testing.T) {
	tr := build(20, 10)

	root := tr.Root()
	require.Equal(t, 10, root.Left().Key())
	require.True(t, root.Right().IsNil(), "no right child")

	leaf := root.Left()
	require.True(t, leaf.Left().IsNil())
	require.True(t, leaf.Right().IsNil())

	var absent avl.Node[int]
	require.True(t, absent.Left().IsNil(), "children of an absent node are absent")
	require.True(t, absent.Right().IsNil())
	require.Zero(t, absent.Right().Key())
}

func TestReads(t *testing.T) {
	tr := build(50, 30, 70, 20, 40, 60, 80)

	lo, ok := tr.Min()
	require.True(t, ok)
	require.Equal(t, 20, lo)
	hi, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, 80, hi)

	require.Equal(t, []int{30, 40, 50}, tr.Range(30, 60))
	require.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tr.Range(0, 100))
	require.Empty(t, tr.Range(41, 49))

	var firstThree []int
	for k := range tr.InOrder() {
		firstThree = append(firstThree, k)
		if len(firstThree) == 3 {
			break
		}
	}
	require.Equal(t, []int{20, 30, 40}, firstThree)

	_, ok = avl.New[int]().Min()
	require.False(t, ok)
	_, ok = avl.New[int]().Max()
	require.False(t, ok)
}

func TestIsValidBST_Bounds(t *testing.T) {
	tr := build(0, 50, 100)
	require.True(t, tr.IsValidBST(-1, 101))
	require.False(t, tr.IsValidBST(0, 101), "lower bound is exclusive")
	require.False(t, tr.IsValidBST(-1, 100), "upper bound is exclusive")
	require.True(t, avl.New[int]().IsValidBST(0, 0), "empty tree is valid")
}

func TestClear(t *testing.T) {
	tr := build(1, 2, 3, 4, 5)
	tr.Clear()
	require.Equal(t, 0, tr.Len())
	require.Equal(t, 0, tr.Count())
	require.True(t, tr.Root().IsNil())
	require.Zero(t, tr.Stats().Total())

	require.True(t, tr.Insert(9))
	require.Equal(t, []int{9}, tr.Keys())
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestRandomOperations inserts and deletes random permutations and checks
// every invariant against a reference set after each step.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := range 20 {
		const N = 200
		tr := avl.New[int]()
		ref := map[int]bool{}

		for _, k := range rng.Perm(N) {
			require.True(t, tr.Insert(k), "round %d insert %d", round, k)
			ref[k] = true
			requireInvariants(t, tr)
		}

		for _, k := range rng.Perm(N)[:N/2] {
			require.True(t, tr.Delete(k), "round %d delete %d", round, k)
			delete(ref, k)
			requireInvariants(t, tr)
		}

		require.Equal(t, slices.Sorted(maps.Keys(ref)), tr.Keys())
		require.Equal(t, len(ref), tr.Count())
		for k := range N {
			require.Equal(t, ref[k], tr.Contains(k), "search %d", k)
		}
	}
}

func TestDeleteAfterInsert(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	base := rng.Perm(64)[:40]

	for k := -5; k < 70; k++ {
		tr := build(base...)
		if tr.Contains(k) {
			continue
		}
		want := tr.Keys()

		require.True(t, tr.Insert(k))
		require.True(t, tr.Delete(k))
		require.Equal(t, want, tr.Keys())
		requireInvariants(t, tr)
	}
}

func TestHeightIsLogarithmic(t *testing.T) {
	tr := avl.New[int]()
	const N = 1 << 12
	for k := range N {
		tr.Insert(k)
	}
	// AVL height is below 1.45 log2(n+2).
	require.LessOrEqual(t, tr.Height(), 18)
	requireInvariants(t, tr)
}
