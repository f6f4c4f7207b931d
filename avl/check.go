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

import "fmt"

// IsValidBST reports whether every key lies strictly between lower and
// upper and each left subtree holds only smaller keys and each right
// subtree only larger ones.
func (t *Tree[K]) IsValidBST(lower, upper K) bool {
	return t.validBST(t.root, &lower, &upper)
}

// IsOrdered is IsValidBST without outer bounds.
func (t *Tree[K]) IsOrdered() bool {
	return t.validBST(t.root, nil, nil)
}

// validBST checks r against the exclusive bounds; a nil bound is open.
func (t *Tree[K]) validBST(r ref, lower, upper *K) bool {
	if r == null {
		return true
	}

	n := &t.nodes[r]
	if (lower != nil && n.key <= *lower) || (upper != nil && n.key >= *upper) {
		return false
	}

	return t.validBST(n.left, lower, &n.key) && t.validBST(n.right, &n.key, upper)
}

// IsBalanced reports whether every node has a balance factor in [-1, 1].
func (t *Tree[K]) IsBalanced() bool {
	return t.isBalanced(t.root)
}

func (t *Tree[K]) isBalanced(r ref) bool {
	if r == null {
		return true
	}

	if b := t.balance(r); b > 1 || b < -1 {
		return false
	}

	return t.isBalanced(t.nodes[r].left) && t.isBalanced(t.nodes[r].right)
}

// HeightsConsistent reports whether every cached height equals one more
// than the taller of its children.
func (t *Tree[K]) HeightsConsistent() bool {
	return t.heightsConsistent(t.root)
}

func (t *Tree[K]) heightsConsistent(r ref) bool {
	if r == null {
		return true
	}

	n := &t.nodes[r]
	if n.height != 1+max(t.height(n.left), t.height(n.right)) {
		return false
	}

	return t.heightsConsistent(n.left) && t.heightsConsistent(n.right)
}

// Validate checks the order, height and balance invariants of every node
// and the cached size. It returns the first violation found, wrapping
// ErrOrder, ErrHeight, ErrBalance or ErrSize.
func (t *Tree[K]) Validate() error {
	if err := t.validate(t.root, nil, nil); err != nil {
		return err
	}

	if n := t.count(t.root); n != t.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrSize, n, t.size)
	}

	return nil
}

func (t *Tree[K]) validate(r ref, lower, upper *K) error {
	if r == null {
		return nil
	}

	n := &t.nodes[r]
	if lower != nil && n.key <= *lower {
		return fmt.Errorf("%w: key %v is not greater than %v", ErrOrder, n.key, *lower)
	}
	if upper != nil && n.key >= *upper {
		return fmt.Errorf("%w: key %v is not less than %v", ErrOrder, n.key, *upper)
	}

	if want := 1 + max(t.height(n.left), t.height(n.right)); n.height != want {
		return fmt.Errorf("%w: key %v has height %d, want %d", ErrHeight, n.key, n.height, want)
	}

	if b := t.balance(r); b > 1 || b < -1 {
		return fmt.Errorf("%w: key %v has balance %d", ErrBalance, n.key, b)
	}

	if err := t.validate(n.left, lower, &n.key); err != nil {
		return err
	}
	return t.validate(n.right, &n.key, upper)
}
