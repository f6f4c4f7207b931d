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

// Case names the four ways a subtree can be out of balance.
type Case int

const (
	LeftLeft Case = iota
	RightRight
	LeftRight
	RightLeft
	numCases
)

func (c Case) String() string {
	switch c {
	case LeftLeft:
		return "LL"
	case RightRight:
		return "RR"
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	default:
		return "?"
	}
}

// RotationStats counts the rebalancing cases applied since the tree was
// created or last reset.
type RotationStats struct {
	Insert    [numCases]int // cases fixed while unwinding an insert
	Delete    [numCases]int // cases fixed while unwinding a delete
	Rotations int           // single rotations; a double case counts two
}

// Total returns the number of rebalanced subtrees on both paths.
func (s RotationStats) Total() int {
	total := 0
	for c := Case(0); c < numCases; c++ {
		total += s.Insert[c] + s.Delete[c]
	}
	return total
}

func (t *Tree[K]) rotateLeft(r ref) ref {
	if r == null || t.nodes[r].right == null {
		return r
	}

	pivot := t.nodes[r].right

	t.nodes[r].right = t.nodes[pivot].left
	t.nodes[pivot].left = r

	// Children first: r is now below pivot.
	t.updateHeight(r)
	t.updateHeight(pivot)

	t.stats.Rotations++
	return pivot
}

func (t *Tree[K]) rotateRight(r ref) ref {
	if r == null || t.nodes[r].left == null {
		return r
	}

	pivot := t.nodes[r].left

	t.nodes[r].left = t.nodes[pivot].right
	t.nodes[pivot].right = r

	t.updateHeight(r)
	t.updateHeight(pivot)

	t.stats.Rotations++
	return pivot
}

// rebalanceInsert restores balance at r after key was inserted below it.
// The heavy side's case is chosen by comparing key with the child's key.
func (t *Tree[K]) rebalanceInsert(r ref, key K) ref {
	bal := t.balance(r)
	left, right := t.nodes[r].left, t.nodes[r].right

	switch {
	case bal > 1 && key < t.nodes[left].key:
		t.stats.Insert[LeftLeft]++
		return t.rotateRight(r)
	case bal < -1 && key > t.nodes[right].key:
		t.stats.Insert[RightRight]++
		return t.rotateLeft(r)
	case bal > 1 && key > t.nodes[left].key:
		t.stats.Insert[LeftRight]++
		t.nodes[r].left = t.rotateLeft(left)
		return t.rotateRight(r)
	case bal < -1 && key < t.nodes[right].key:
		t.stats.Insert[RightLeft]++
		t.nodes[r].right = t.rotateRight(right)
		return t.rotateLeft(r)
	}

	return r
}

// rebalanceDelete restores balance at r after a key was removed below it.
// The case is chosen from the sign of the heavy child's balance factor.
func (t *Tree[K]) rebalanceDelete(r ref) ref {
	bal := t.balance(r)
	left, right := t.nodes[r].left, t.nodes[r].right

	// Left-heavy
	if bal > 1 {
		if t.balance(left) >= 0 {
			t.stats.Delete[LeftLeft]++
			return t.rotateRight(r)
		}
		t.stats.Delete[LeftRight]++
		t.nodes[r].left = t.rotateLeft(left)
		return t.rotateRight(r)
	}

	// Right-heavy
	if bal < -1 {
		if t.balance(right) <= 0 {
			t.stats.Delete[RightRight]++
			return t.rotateLeft(r)
		}
		t.stats.Delete[RightLeft]++
		t.nodes[r].right = t.rotateRight(right)
		return t.rotateLeft(r)
	}

	return r
}
