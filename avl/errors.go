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

import "errors"

var (
	// ErrOrder indicates a key outside the range allowed by its ancestors.
	ErrOrder = errors.New("avl: search order violated")
	// ErrHeight indicates a cached height that does not match its children.
	ErrHeight = errors.New("avl: cached height is stale")
	// ErrBalance indicates a node whose subtrees differ in height by more than one.
	ErrBalance = errors.New("avl: balance factor out of range")
	// ErrSize indicates the cached key count disagrees with the node count.
	ErrSize = errors.New("avl: size does not match node count")
)
