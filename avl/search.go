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

package avl

import (
	"iter"
	"slices"
)

// Search looks for the node holding key.
// It returns the node if found, and a boolean indicating whether the key was found.
func (t *Tree[K]) Search(key K) (Node[K], bool) {
	r := t.search(t.root, key)
	if r == null {
		return Node[K]{}, false
	}
	return Node[K]{t: t, r: r}, true
}

// search is a helper function that descends the tree recursively.
func (t *Tree[K]) search(r ref, key K) ref {
	if r == null {
		return null
	}

	if k := t.nodes[r].key; key < k {
		return t.search(t.nodes[r].left, key)
	} else if key > k {
		return t.search(t.nodes[r].right, key)
	}
	return r
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.search(t.root, key) != null
}

// Count walks the tree and returns the number of nodes.
// Unlike Len it does not trust the cached size.
func (t *Tree[K]) Count() int {
	return t.count(t.root)
}

func (t *Tree[K]) count(r ref) int {
	if r == null {
		return 0
	}
	return 1 + t.count(t.nodes[r].left) + t.count(t.nodes[r].right)
}

// InOrder returns the keys in ascending order.
// The tree must not be modified while the sequence is being consumed.
func (t *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.walk(t.root, yield)
	}
}

func (t *Tree[K]) walk(r ref, yield func(K) bool) bool {
	if r == null {
		return true
	}
	n := t.nodes[r]
	return t.walk(n.left, yield) && yield(n.key) && t.walk(n.right, yield)
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	return slices.AppendSeq(keys, t.InOrder())
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == null {
		var zero K
		return zero, false
	}
	return t.nodes[t.findMin(t.root)].key, true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == null {
		var zero K
		return zero, false
	}
	return t.nodes[t.findMax(t.root)].key, true
}

// Range returns, in ascending order, every key k with low <= k < high.
func (t *Tree[K]) Range(low, high K) []K {
	var results []K
	t.rangeSearch(t.root, low, high, &results)
	return results
}

func (t *Tree[K]) rangeSearch(r ref, low, high K, results *[]K) {
	if r == null {
		return
	}

	n := t.nodes[r]

	// Smaller keys can only be in range while n.key is above low.
	if n.key > low {
		t.rangeSearch(n.left, low, high, results)
	}

	if n.key >= low && n.key < high {
		*results = append(*results, n.key)
	}

	if n.key < high {
		t.rangeSearch(n.right, low, high, results)
	}
}
