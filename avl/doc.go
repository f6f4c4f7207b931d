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

// Package avl implements a height-balanced binary search tree over
// ordered keys.
//
// What:
//
//   - Tree[K] keeps unique keys in ascending order and restores the AVL
//     balance condition after every Insert and Delete by rotating nodes on
//     the path back to the root.
//   - Nodes live in an arena owned by the tree and are addressed by
//     integer refs. Deleted slots are put on a free-list and reused.
//   - Search, Count, InOrder, Range, Min and Max are pure reads.
//   - IsValidBST, IsBalanced, HeightsConsistent and Validate check the
//     order, balance and height invariants of the current tree.
//
// Heights:
//
//   - An absent subtree has height 0 and a leaf has height 1.
//   - The balance factor of a node is height(left) - height(right) and
//     must stay within [-1, 1].
//
// Rebalancing:
//
//   - After an insert the rotation case is picked by comparing the new
//     key with the key of the heavy child.
//   - After a delete the case is picked from the sign of the heavy
//     child's own balance factor, since the removed key is gone.
//
// Complexity:
//
//   - Insert, Delete, Search: O(log n) time, recursion depth O(log n).
//   - Count, InOrder, Validate: O(n).
//
// A Tree is not safe for concurrent use.
package avl
