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

import "cmp"

// Tree is an AVL tree of unique keys. The zero value is an empty tree
// ready to use.
type Tree[K cmp.Ordered] struct {
	nodes []node[K] // arena; nodes[0] is the null sentinel once allocated
	free  []ref     // released slots, reused LIFO
	root  ref
	size  int
	stats RotationStats
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{root: null}
}

// Insert adds key to the tree and reports whether it was added.
// Inserting a key that is already present leaves the tree untouched,
// cached heights included.
func (t *Tree[K]) Insert(key K) bool {
	before := t.size
	root := t.insert(t.root, key)
	t.root = root
	return t.size != before
}

func (t *Tree[K]) insert(r ref, key K) ref {
	if r == null {
		t.size++
		return t.alloc(key)
	}

	// alloc may grow the arena, so child refs are stored only after the
	// recursive call has returned.
	if k := t.nodes[r].key; key < k {
		left := t.insert(t.nodes[r].left, key)
		t.nodes[r].left = left
	} else if key > k {
		right := t.insert(t.nodes[r].right, key)
		t.nodes[r].right = right
	} else {
		return r
	}

	t.updateHeight(r)
	return t.rebalanceInsert(r, key)
}

// Delete removes key from the tree and reports whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	before := t.size
	t.root = t.delete(t.root, key)
	return t.size != before
}

func (t *Tree[K]) delete(r ref, key K) ref {
	if r == null {
		return null // Key not found
	}

	if k := t.nodes[r].key; key < k {
		t.nodes[r].left = t.delete(t.nodes[r].left, key)
	} else if key > k {
		t.nodes[r].right = t.delete(t.nodes[r].right, key)
	} else {
		left, right := t.nodes[r].left, t.nodes[r].right

		// No children or a single child: splice it into r's place.
		if left == null || right == null {
			child := left
			if child == null {
				child = right
			}
			t.release(r)
			t.size--
			return child
		}

		// Two children: take the in-order successor's key, then remove
		// the successor from the right subtree.
		succ := t.nodes[t.findMin(right)].key
		t.nodes[r].key = succ
		t.nodes[r].right = t.delete(right, succ)
	}

	t.updateHeight(r)
	return t.rebalanceDelete(r)
}

func (t *Tree[K]) findMin(r ref) ref {
	for t.nodes[r].left != null {
		r = t.nodes[r].left
	}
	return r
}

func (t *Tree[K]) findMax(r ref) ref {
	for t.nodes[r].right != null {
		r = t.nodes[r].right
	}
	return r
}

// Clear drops every node. The arena is released to the garbage collector.
func (t *Tree[K]) Clear() {
	t.nodes = nil
	t.free = nil
	t.root = null
	t.size = 0
	t.stats = RotationStats{}
}

// Len returns the number of keys, tracked incrementally.
func (t *Tree[K]) Len() int {
	return t.size
}

// Height returns the height of the root, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

// Root returns a handle on the root node. It is absent for an empty tree.
func (t *Tree[K]) Root() Node[K] {
	return Node[K]{t: t, r: t.root}
}

// Stats returns the rebalancing counters.
func (t *Tree[K]) Stats() RotationStats {
	return t.stats
}

// ResetStats zeroes the rebalancing counters.
func (t *Tree[K]) ResetStats() {
	t.stats = RotationStats{}
}
