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

// ref addresses a slot in the tree's arena. The zero ref is the absent node.
type ref int32

const null ref = 0

type node[K cmp.Ordered] struct {
	key    K
	left   ref
	right  ref
	height int
}

// alloc stores a new leaf holding key and returns its ref, reusing a
// freed slot when one is available.
func (t *Tree[K]) alloc(key K) ref {
	if len(t.nodes) == 0 {
		// Slot 0 backs the null ref and never holds a key.
		t.nodes = append(t.nodes, node[K]{})
	}

	leaf := node[K]{key: key, left: null, right: null, height: 1}
	if n := len(t.free); n > 0 {
		r := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[r] = leaf
		return r
	}

	t.nodes = append(t.nodes, leaf)
	return ref(len(t.nodes) - 1)
}

// release clears the slot at r and puts it on the free-list.
func (t *Tree[K]) release(r ref) {
	t.nodes[r] = node[K]{}
	t.free = append(t.free, r)
}

// Node is a read-only handle on a node of a Tree. The zero Node is absent.
// A Node is only meaningful until the next Insert, Delete or Clear on the
// tree it came from.
type Node[K cmp.Ordered] struct {
	t *Tree[K]
	r ref
}

// IsNil reports whether the handle points at an absent subtree.
func (n Node[K]) IsNil() bool {
	return n.t == nil || n.r == null
}

// Key returns the node's key, or the zero key for an absent node.
func (n Node[K]) Key() K {
	if n.IsNil() {
		var zero K
		return zero
	}
	return n.t.nodes[n.r].key
}

// Height returns the cached height. Absent nodes have height 0.
func (n Node[K]) Height() int {
	if n.IsNil() {
		return 0
	}
	return n.t.height(n.r)
}

// Balance returns height(left) - height(right).
func (n Node[K]) Balance() int {
	if n.IsNil() {
		return 0
	}
	return n.t.balance(n.r)
}

// Left returns the left child, absent when n has none or is itself absent.
func (n Node[K]) Left() Node[K] {
	if n.IsNil() {
		return Node[K]{}
	}
	return Node[K]{t: n.t, r: n.t.nodes[n.r].left}
}

// Right returns the right child, absent when n has none or is itself absent.
func (n Node[K]) Right() Node[K] {
	if n.IsNil() {
		return Node[K]{}
	}
	return Node[K]{t: n.t, r: n.t.nodes[n.r].right}
}
