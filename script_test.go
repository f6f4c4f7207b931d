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
	"strings"
	"testing"
)

// TestSplitCommand verifies that splitCommand tokenizes with shell quoting rules.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2 3", []string{"insert", "1", "2", "3"}},
		{`delete "4"`, []string{"delete", "4"}},
		{"  search\t9  ", []string{"search", "9"}},
		{"", nil},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		input string
		kind  OpKind
		keys  []int
	}{
		{"insert 30 20 10", OpInsert, []int{30, 20, 10}},
		{"INS -5", OpInsert, []int{-5}},
		{"rm 4", OpDelete, []int{4}},
		{"find 7 # trailing comment", OpSearch, []int{7}},
		{"range 10 20", OpRange, []int{10, 20}},
		{"keys", OpInOrder, []int{}},
		{"validate", OpCheck, []int{}},
		{"print", OpShow, []int{}},
		{"clear", OpClear, []int{}},
	}

	for _, tc := range tests {
		op, ok, err := ParseLine(tc.input, 3)
		if err != nil || !ok {
			t.Errorf("ParseLine(%q) = ok %t, err %v; want a parsed op", tc.input, ok, err)
			continue
		}
		if op.Kind != tc.kind || op.Line != 3 {
			t.Errorf("ParseLine(%q) = %s at line %d; want %s at line 3", tc.input, op.Kind, op.Line, tc.kind)
		}
		if len(op.Keys) != len(tc.keys) {
			t.Errorf("ParseLine(%q) keys = %v; want %v", tc.input, op.Keys, tc.keys)
			continue
		}
		for i := range op.Keys {
			if op.Keys[i] != tc.keys[i] {
				t.Errorf("ParseLine(%q) keys = %v; want %v", tc.input, op.Keys, tc.keys)
				break
			}
		}
	}
}

func TestParseLineSkipsBlankAndComments(t *testing.T) {
	for _, line := range []string{"", "   ", "# just a comment", "\t# indented"} {
		_, ok, err := ParseLine(line, 1)
		if ok || err != nil {
			t.Errorf("ParseLine(%q) = ok %t, err %v; want skipped", line, ok, err)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"rotate 1", ErrUnknownOp},
		{"insert", ErrArity},
		{"search 1 2", ErrArity},
		{"range 1", ErrArity},
		{"count 5", ErrArity},
		{"insert 1 x", ErrBadKey},
		{"delete 1.5", ErrBadKey},
	}

	for _, tc := range tests {
		_, _, err := ParseLine(tc.input, 12)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseLine(%q) error = %v; want %v", tc.input, err, tc.want)
			continue
		}
		if !strings.HasPrefix(err.Error(), "line 12: ") {
			t.Errorf("ParseLine(%q) error %q does not name the line", tc.input, err)
		}
	}
}

func TestParseScript(t *testing.T) {
	script := `# build a small tree
insert 30 20 10

search 20
delete 10
check
`
	ops, err := ParseScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("ParseScript returned error: %v", err)
	}

	want := []string{"insert 30 20 10", "search 20", "delete 10", "check"}
	wantLines := []int{2, 4, 5, 6}
	if len(ops) != len(want) {
		t.Fatalf("ParseScript returned %d ops; want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.String() != want[i] || op.Line != wantLines[i] {
			t.Errorf("op %d = %q at line %d; want %q at line %d", i, op, op.Line, want[i], wantLines[i])
		}
	}
}

func TestParseScriptStopsAtFirstError(t *testing.T) {
	_, err := ParseScript(strings.NewReader("insert 1\nbogus\ninsert x\n"))
	if !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("ParseScript error = %v; want %v", err, ErrUnknownOp)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ParseScript error %q does not name line 2", err)
	}
}
