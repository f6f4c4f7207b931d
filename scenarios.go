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
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cybrota/avlkit/avl"
)

// Scenario is a fixed key sequence with the tree it must produce.
type Scenario struct {
	Name   string
	Insert []int
	Delete []int
	Check  func(tr *avl.Tree[int]) error
}

type ScenarioResult struct {
	Name string
	Err  error
}

func (r ScenarioResult) Passed() bool {
	return r.Err == nil
}

// expectShape checks the root key and the keys of its two children.
func expectShape(root, left, right int) func(*avl.Tree[int]) error {
	return func(tr *avl.Tree[int]) error {
		n := tr.Root()
		if n.IsNil() {
			return errors.New("tree is empty")
		}
		if n.Key() != root || n.Left().Key() != left || n.Right().Key() != right {
			return fmt.Errorf("got root %d (%d, %d), want %d (%d, %d)",
				n.Key(), n.Left().Key(), n.Right().Key(), root, left, right)
		}
		return nil
	}
}

func expectCase(insert bool, c avl.Case) func(*avl.Tree[int]) error {
	return func(tr *avl.Tree[int]) error {
		st := tr.Stats()
		got, path := st.Delete[c], "delete"
		if insert {
			got, path = st.Insert[c], "insert"
		}
		if got != 1 {
			return fmt.Errorf("%s case %s fired %d times, want 1", path, c, got)
		}
		return nil
	}
}

func expectLeaves(tr *avl.Tree[int]) error {
	root := tr.Root()
	if h := root.Left().Height(); h != 1 {
		return fmt.Errorf("left child height %d, want 1", h)
	}
	if h := root.Right().Height(); h != 1 {
		return fmt.Errorf("right child height %d, want 1", h)
	}
	return nil
}

func all(checks ...func(*avl.Tree[int]) error) func(*avl.Tree[int]) error {
	return func(tr *avl.Tree[int]) error {
		for _, check := range checks {
			if err := check(tr); err != nil {
				return err
			}
		}
		return nil
	}
}

// DefaultScenarios covers every rebalancing case on both paths and the
// fixed property checks for search, count and duplicates.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:   "insert left-left",
			Insert: []int{30, 20, 10},
			Check:  all(expectShape(20, 10, 30), expectLeaves, expectCase(true, avl.LeftLeft)),
		},
		{
			Name:   "insert left-right",
			Insert: []int{30, 10, 20},
			Check:  all(expectShape(20, 10, 30), expectCase(true, avl.LeftRight)),
		},
		{
			Name:   "insert right-right",
			Insert: []int{10, 20, 30},
			Check:  all(expectShape(20, 10, 30), expectCase(true, avl.RightRight)),
		},
		{
			Name:   "insert right-left",
			Insert: []int{10, 30, 20},
			Check:  all(expectShape(20, 10, 30), expectCase(true, avl.RightLeft)),
		},
		{
			Name:   "insert four ascending",
			Insert: []int{10, 20, 30, 40},
			Check: all(expectShape(20, 10, 30), func(tr *avl.Tree[int]) error {
				right := tr.Root().Right()
				if right.Right().Key() != 40 || !right.Left().IsNil() {
					return errors.New("want 30 with a single right child 40")
				}
				return nil
			}),
		},
		{
			Name:   "delete left-left",
			Insert: []int{30, 20, 40, 10},
			Delete: []int{40},
			Check:  all(expectShape(20, 10, 30), expectCase(false, avl.LeftLeft)),
		},
		{
			Name:   "delete left-right",
			Insert: []int{30, 20, 40, 25},
			Delete: []int{40},
			Check:  all(expectShape(25, 20, 30), expectCase(false, avl.LeftRight)),
		},
		{
			Name:   "delete right-right",
			Insert: []int{20, 10, 30, 40},
			Delete: []int{10},
			Check:  all(expectShape(30, 20, 40), expectCase(false, avl.RightRight)),
		},
		{
			Name:   "delete right-left",
			Insert: []int{20, 10, 30, 25},
			Delete: []int{10},
			Check:  all(expectShape(25, 20, 30), expectCase(false, avl.RightLeft)),
		},
		{
			Name:   "delete from four nodes",
			Insert: []int{40, 10, 70, 55},
			Delete: []int{10},
			Check: func(tr *avl.Tree[int]) error {
				if n := tr.Count(); n != 3 {
					return fmt.Errorf("count %d, want 3", n)
				}
				if !tr.IsValidBST(-1, 101) || !tr.IsBalanced() {
					return errors.New("tree is not a balanced search tree")
				}
				return nil
			},
		},
		{
			Name: "search empty tree",
			Check: func(tr *avl.Tree[int]) error {
				for _, k := range []int{0, 50, 100} {
					if _, ok := tr.Search(k); ok {
						return fmt.Errorf("found %d in an empty tree", k)
					}
				}
				return nil
			},
		},
		{
			Name:   "duplicate insert",
			Insert: []int{42, 42},
			Check: func(tr *avl.Tree[int]) error {
				if n := tr.Count(); n != 1 {
					return fmt.Errorf("count %d, want 1", n)
				}
				n, ok := tr.Search(42)
				if !ok || n.Height() != 1 {
					return errors.New("want 42 found as a leaf of height 1")
				}
				return nil
			},
		},
		{
			Name:   "delete after insert",
			Insert: []int{50, 25, 75, 10, 30, 60, 90, 5},
			Delete: []int{5},
			Check: func(tr *avl.Tree[int]) error {
				want := []int{10, 25, 30, 50, 60, 75, 90}
				if got := tr.Keys(); !slices.Equal(got, want) {
					return fmt.Errorf("keys %v, want %v", got, want)
				}
				return nil
			},
		},
	}
}

// Run builds the scenario's tree and checks it. Every scenario must also
// leave a tree that passes Validate.
func (sc Scenario) Run() ScenarioResult {
	tr := avl.New[int]()
	for _, k := range sc.Insert {
		tr.Insert(k)
	}
	if len(sc.Delete) > 0 {
		tr.ResetStats()
	}
	for _, k := range sc.Delete {
		if !tr.Delete(k) {
			return ScenarioResult{Name: sc.Name, Err: fmt.Errorf("delete %d: key not found", k)}
		}
	}

	if err := tr.Validate(); err != nil {
		return ScenarioResult{Name: sc.Name, Err: err}
	}
	if sc.Check != nil {
		if err := sc.Check(tr); err != nil {
			return ScenarioResult{Name: sc.Name, Err: err}
		}
	}
	return ScenarioResult{Name: sc.Name}
}

// RunScenarios runs every scenario, prints a line per result and returns
// the number of failures.
func RunScenarios(w io.Writer, scenarios []Scenario) int {
	failed := 0
	for _, sc := range scenarios {
		res := sc.Run()
		if res.Passed() {
			fmt.Fprintf(w, "%sPASS%s %s\n", Green, Reset, res.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "%sFAIL%s %s: %v\n", Error, Reset, res.Name, res.Err)
	}
	fmt.Fprintf(w, "\n%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	return failed
}
