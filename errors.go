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

package main

import "errors"

var (
	// ErrUnknownOp indicates a script line whose verb is not recognised.
	ErrUnknownOp = errors.New("avlkit: unknown operation")
	// ErrBadKey indicates a key argument that is not an integer.
	ErrBadKey = errors.New("avlkit: key must be an integer")
	// ErrArity indicates the wrong number of key arguments for an operation.
	ErrArity = errors.New("avlkit: wrong number of arguments")
	// ErrInvariant indicates the tree failed validation after an operation.
	ErrInvariant = errors.New("avlkit: tree invariant violated")
	// ErrFillRange indicates a key range too small for the requested fill.
	ErrFillRange = errors.New("avlkit: key range smaller than fill count")
)
