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
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlkit/avl"
)

// TreeStyles holds the styling used when drawing a tree
type TreeStyles struct {
	Key    lipgloss.Style
	Meta   lipgloss.Style
	Branch lipgloss.Style
	Skewed lipgloss.Style // balance factor of +1/-1
}

// PlainTreeStyles renders without any terminal attributes.
func PlainTreeStyles() TreeStyles {
	return TreeStyles{
		Key:    lipgloss.NewStyle(),
		Meta:   lipgloss.NewStyle(),
		Branch: lipgloss.NewStyle(),
		Skewed: lipgloss.NewStyle(),
	}
}

// NewTreeStyles creates the default coloured styles
func NewTreeStyles() TreeStyles {
	return TreeStyles{
		Key: lipgloss.NewStyle().
			Foreground(accentColor()).
			Bold(true),
		Meta: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Branch: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Skewed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
}

// RenderTree draws the tree top-down, one node per line, with each node's
// cached height and balance factor. Children are tagged L and R; an absent
// child is drawn as "·" when its sibling exists.
func RenderTree(tr *avl.Tree[int], st TreeStyles) string {
	root := tr.Root()
	if root.IsNil() {
		return st.Meta.Render("(empty)") + "\n"
	}

	var b strings.Builder
	b.WriteString(nodeLabel(root, st))
	b.WriteString("\n")
	renderChildren(&b, root, "", st)
	return b.String()
}

func renderChildren(b *strings.Builder, n avl.Node[int], prefix string, st TreeStyles) {
	left, right := n.Left(), n.Right()
	if left.IsNil() && right.IsNil() {
		return
	}
	renderChild(b, left, "L", prefix, false, st)
	renderChild(b, right, "R", prefix, true, st)
}

func renderChild(b *strings.Builder, n avl.Node[int], side, prefix string, last bool, st TreeStyles) {
	connector, indent := "├── ", "│   "
	if last {
		connector, indent = "└── ", "    "
	}

	b.WriteString(st.Branch.Render(prefix + connector))
	b.WriteString(side)
	b.WriteString(" ")
	if n.IsNil() {
		b.WriteString(st.Meta.Render("·"))
		b.WriteString("\n")
		return
	}
	b.WriteString(nodeLabel(n, st))
	b.WriteString("\n")
	renderChildren(b, n, prefix+indent, st)
}

func nodeLabel(n avl.Node[int], st TreeStyles) string {
	meta := st.Meta
	if n.Balance() != 0 {
		meta = st.Skewed
	}
	return st.Key.Render(fmt.Sprintf("%d", n.Key())) + " " +
		meta.Render(fmt.Sprintf("h=%d b=%d", n.Height(), n.Balance()))
}
