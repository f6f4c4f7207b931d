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

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlkit/avl"
)

// Session applies parsed operations to one tree and reports each result.
type Session struct {
	tree     *avl.Tree[int]
	searches *cache.Cache
	config   *Config
	styles   TreeStyles
	out      io.Writer

	applied   int
	mutations int
}

func NewSession(config *Config, out io.Writer) *Session {
	return &Session{
		tree:     avl.New[int](),
		searches: NewSearchCache(config.SearchTTL()),
		config:   config,
		styles:   PlainTreeStyles(),
		out:      out,
	}
}

func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

// SetStyles changes how the show operation draws the tree.
func (s *Session) SetStyles(st TreeStyles) {
	s.styles = st
}

// SetOutput redirects operation reports.
func (s *Session) SetOutput(out io.Writer) {
	s.out = out
}

// Replay applies ops in order and stops at the first error.
func (s *Session) Replay(ops []Op) error {
	for _, op := range ops {
		if err := s.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs a single operation. With check_after_each_op enabled, a
// mutation that leaves the tree invalid returns an error wrapping
// ErrInvariant.
func (s *Session) Apply(op Op) error {
	s.applied++

	switch op.Kind {
	case OpInsert:
		for _, k := range op.Keys {
			if s.tree.Insert(k) {
				s.changed()
				fmt.Fprintf(s.out, "insert %d: %sadded%s\n", k, Green, Reset)
			} else {
				fmt.Fprintf(s.out, "insert %d: already present\n", k)
			}
			if err := s.checkAfter(op, k); err != nil {
				return err
			}
		}
	case OpDelete:
		for _, k := range op.Keys {
			if s.tree.Delete(k) {
				s.changed()
				fmt.Fprintf(s.out, "delete %d: %sremoved%s\n", k, Green, Reset)
			} else {
				fmt.Fprintf(s.out, "delete %d: not found\n", k)
			}
			if err := s.checkAfter(op, k); err != nil {
				return err
			}
		}
	case OpSearch:
		k := op.Keys[0]
		res := s.search(k)
		if res.Found {
			fmt.Fprintf(s.out, "search %d: found (h=%d b=%d)\n", k, res.Height, res.Balance)
		} else {
			fmt.Fprintf(s.out, "search %d: %snot found%s\n", k, Warning, Reset)
		}
	case OpCount:
		fmt.Fprintf(s.out, "count: %d\n", s.tree.Count())
	case OpLen:
		fmt.Fprintf(s.out, "len: %d\n", s.tree.Len())
	case OpHeight:
		fmt.Fprintf(s.out, "height: %d\n", s.tree.Height())
	case OpInOrder:
		fmt.Fprintf(s.out, "inorder: [%s]\n", joinKeys(s.tree.Keys()))
	case OpMin, OpMax:
		k, ok := s.tree.Min()
		if op.Kind == OpMax {
			k, ok = s.tree.Max()
		}
		if !ok {
			fmt.Fprintf(s.out, "%s: empty tree\n", op.Kind)
		} else {
			fmt.Fprintf(s.out, "%s: %d\n", op.Kind, k)
		}
	case OpRange:
		lo, hi := op.Keys[0], op.Keys[1]
		fmt.Fprintf(s.out, "range [%d, %d): [%s]\n", lo, hi, joinKeys(s.tree.Range(lo, hi)))
	case OpCheck:
		if err := s.Check(); err != nil {
			fmt.Fprintf(s.out, "check: %sFAIL%s %v\n", Error, Reset, err)
			return fmt.Errorf("line %d: %w", op.Line, err)
		}
		fmt.Fprintf(s.out, "check: %sok%s (%d keys, height %d)\n", Green, Reset, s.tree.Len(), s.tree.Height())
	case OpShow:
		io.WriteString(s.out, RenderTree(s.tree, s.styles))
	case OpClear:
		s.tree.Clear()
		s.changed()
		fmt.Fprintf(s.out, "clear: tree is empty\n")
	default:
		return fmt.Errorf("line %d: %w: %s", op.Line, ErrUnknownOp, op.Kind)
	}

	return nil
}

// Check validates every invariant and the configured key bounds. A bound
// left at math.MinInt or math.MaxInt is open, so the extreme ints are
// accepted as keys.
func (s *Session) Check() error {
	if err := s.tree.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	lower, upper := s.config.Tree.LowerBound, s.config.Tree.UpperBound
	openLower, openUpper := lower == math.MinInt, upper == math.MaxInt
	switch {
	case openLower && openUpper:
		return nil
	case !openLower && !openUpper:
		if !s.tree.IsValidBST(lower, upper) {
			return fmt.Errorf("%w: keys outside (%d, %d)", ErrInvariant, lower, upper)
		}
	case openUpper:
		// Validate has already checked the order, so the extremes suffice.
		if k, ok := s.tree.Min(); ok && k <= lower {
			return fmt.Errorf("%w: key %d is not above %d", ErrInvariant, k, lower)
		}
	default:
		if k, ok := s.tree.Max(); ok && k >= upper {
			return fmt.Errorf("%w: key %d is not below %d", ErrInvariant, k, upper)
		}
	}
	return nil
}

func (s *Session) checkAfter(op Op, key int) error {
	if !s.config.Tree.CheckAfterEachOp {
		return nil
	}
	if err := s.Check(); err != nil {
		return fmt.Errorf("line %d: %s %d: %w", op.Line, op.Kind, key, err)
	}
	return nil
}

// search answers from the memo while the tree is unchanged.
func (s *Session) search(k int) searchResult {
	if res, ok := GetCachedSearch(s.searches, k); ok {
		return res
	}

	var res searchResult
	if n, ok := s.tree.Search(k); ok {
		res = searchResult{Found: true, Height: n.Height(), Balance: n.Balance()}
	}
	CacheSearch(s.searches, k, res)
	return res
}

func (s *Session) changed() {
	s.mutations++
	s.searches.Flush()
}

// Summary describes what the session has done so far.
func (s *Session) Summary() string {
	st := s.tree.Stats()
	var cases []string
	for c := avl.LeftLeft; c <= avl.RightLeft; c++ {
		cases = append(cases, fmt.Sprintf("%s=%d/%d", c, st.Insert[c], st.Delete[c]))
	}
	return fmt.Sprintf("%d ops, %d mutations, %d keys, height %d, rotations %d (insert/delete %s)",
		s.applied, s.mutations, s.tree.Len(), s.tree.Height(), st.Rotations, strings.Join(cases, " "))
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
