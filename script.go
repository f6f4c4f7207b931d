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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// OpKind is a tree operation a script line can ask for.
type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpSearch
	OpCount
	OpLen
	OpHeight
	OpInOrder
	OpMin
	OpMax
	OpRange
	OpCheck
	OpShow
	OpClear
)

var opNames = map[OpKind]string{
	OpInsert:  "insert",
	OpDelete:  "delete",
	OpSearch:  "search",
	OpCount:   "count",
	OpLen:     "len",
	OpHeight:  "height",
	OpInOrder: "inorder",
	OpMin:     "min",
	OpMax:     "max",
	OpRange:   "range",
	OpCheck:   "check",
	OpShow:    "show",
	OpClear:   "clear",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return "op(" + strconv.Itoa(int(k)) + ")"
}

// verbs maps every accepted spelling to its operation.
var verbs = map[string]OpKind{
	"insert": OpInsert,
	"ins":    OpInsert,
	"i":      OpInsert,
	"add":    OpInsert,

	"delete": OpDelete,
	"del":    OpDelete,
	"d":      OpDelete,
	"rm":     OpDelete,

	"search": OpSearch,
	"find":   OpSearch,
	"s":      OpSearch,
	"get":    OpSearch,

	"count":    OpCount,
	"len":      OpLen,
	"height":   OpHeight,
	"inorder":  OpInOrder,
	"keys":     OpInOrder,
	"min":      OpMin,
	"max":      OpMax,
	"range":    OpRange,
	"check":    OpCheck,
	"validate": OpCheck,
	"show":     OpShow,
	"print":    OpShow,
	"clear":    OpClear,
}

// arity is the [min, max] number of keys an operation takes; -1 is unbounded.
func (k OpKind) arity() (int, int) {
	switch k {
	case OpInsert, OpDelete:
		return 1, -1
	case OpSearch:
		return 1, 1
	case OpRange:
		return 2, 2
	default:
		return 0, 0
	}
}

// Op is one parsed script line.
type Op struct {
	Kind OpKind
	Keys []int
	Line int
}

func (op Op) String() string {
	if len(op.Keys) == 0 {
		return op.Kind.String()
	}
	parts := make([]string, 0, len(op.Keys)+1)
	parts = append(parts, op.Kind.String())
	for _, k := range op.Keys {
		parts = append(parts, strconv.Itoa(k))
	}
	return strings.Join(parts, " ")
}

// splitCommand tokenizes a line with shell quoting rules.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	return args, nil
}

// stripComment drops everything from the first '#'.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// ParseLine parses a single script line. Blank and comment-only lines
// report ok == false with a nil error.
func ParseLine(line string, lineNo int) (op Op, ok bool, err error) {
	args, err := splitCommand(stripComment(line))
	if err != nil {
		return Op{}, false, fmt.Errorf("line %d: %w", lineNo, err)
	}
	if len(args) == 0 {
		return Op{}, false, nil
	}

	kind, known := verbs[strings.ToLower(args[0])]
	if !known {
		return Op{}, false, fmt.Errorf("line %d: %w: %q", lineNo, ErrUnknownOp, args[0])
	}

	lo, hi := kind.arity()
	n := len(args) - 1
	if n < lo || (hi >= 0 && n > hi) {
		return Op{}, false, fmt.Errorf("line %d: %w: %s takes %s, got %d", lineNo, ErrArity, kind, arityText(lo, hi), n)
	}

	keys := make([]int, 0, n)
	for _, a := range args[1:] {
		k, err := strconv.Atoi(a)
		if err != nil {
			return Op{}, false, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadKey, a)
		}
		keys = append(keys, k)
	}

	return Op{Kind: kind, Keys: keys, Line: lineNo}, true, nil
}

func arityText(lo, hi int) string {
	switch {
	case hi < 0:
		return fmt.Sprintf("at least %d key(s)", lo)
	case lo == hi && lo == 0:
		return "no keys"
	case lo == hi:
		return fmt.Sprintf("%d key(s)", lo)
	default:
		return fmt.Sprintf("%d to %d keys", lo, hi)
	}
}

// ParseScript reads one operation per line from r.
func ParseScript(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		op, ok, err := ParseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, op)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ops, nil
}
