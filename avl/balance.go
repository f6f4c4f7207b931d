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

func (t *Tree[K]) height(r ref) int {
	if r == null {
		return 0
	}
	return t.nodes[r].height
}

func (t *Tree[K]) updateHeight(r ref) {
	n := &t.nodes[r]
	n.height = max(t.height(n.left), t.height(n.right)) + 1
}

func (t *Tree[K]) balance(r ref) int {
	if r == null {
		return 0
	}
	n := &t.nodes[r]
	return t.height(n.left) - t.height(n.right)
}
