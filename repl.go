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
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// maxLogLines bounds the operation log kept by the REPL.
const maxLogLines = 500

// Styles holds all the styling for the REPL
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accentColor()).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// statusMsg reports the outcome of a background command such as a copy.
type statusMsg struct {
	text string
	err  error
}

// ReplModel is the Bubble Tea state of the interactive prompt.
type ReplModel struct {
	session *Session
	output  *bytes.Buffer

	input    textinput.Model
	treeView viewport.Model

	log       []string
	submitted int // non-blank lines entered, used as the line number
	status    statusMsg
	showHelp  bool
	helpText  string

	styles *Styles
	ready  bool
	width  int
	height int
}

// NewReplModel creates the REPL around an existing session.
func NewReplModel(session *Session, config *Config) ReplModel {
	ti := textinput.New()
	ti.Placeholder = "insert 30 20 10"
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	tv := viewport.New(0, 0)

	output := &bytes.Buffer{}
	session.SetOutput(output)
	session.SetStyles(NewTreeStyles())

	m := ReplModel{
		session:  session,
		output:   output,
		input:    ti,
		treeView: tv,
		styles:   NewStyles(),
		helpText: renderReplHelp(config.UI.WordWrap),
	}
	m.refreshTree()
	return m
}

// renderReplHelp renders the operations reference, falling back to the
// raw markdown if glamour cannot build a renderer.
func renderReplHelp(wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return operationsMarkdown
	}
	out, err := r.Render(operationsMarkdown)
	if err != nil {
		return operationsMarkdown
	}
	return out
}

// Init is called when the program starts
func (m ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			keys := joinKeys(m.session.Tree().Keys())
			return m, func() tea.Msg {
				if err := clipboard.WriteAll(keys); err != nil {
					return statusMsg{err: err}
				}
				return statusMsg{text: "copied in-order keys to clipboard"}
			}
		case "pgup", "pgdown", "home", "end":
			m.treeView, cmd = m.treeView.Update(msg)
			return m, cmd
		case "enter":
			m.submit(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}

	case statusMsg:
		m.status = msg
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses and applies one line, collecting its report into the log.
func (m *ReplModel) submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.submitted++

	op, ok, err := ParseLine(line, m.submitted)
	if err != nil {
		m.status = statusMsg{err: err}
		return
	}
	if !ok {
		return
	}

	m.output.Reset()
	err = m.session.Apply(op)
	for _, l := range strings.Split(strings.TrimRight(m.output.String(), "\n"), "\n") {
		if l != "" {
			m.log = append(m.log, l)
		}
	}
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}

	if err != nil {
		m.status = statusMsg{err: err}
	} else {
		m.status = statusMsg{text: m.session.Summary()}
	}
	m.refreshTree()
}

func (m *ReplModel) refreshTree() {
	if m.showHelp {
		m.treeView.SetContent(m.helpText)
		return
	}
	m.treeView.SetContent(RenderTree(m.session.Tree(), m.session.styles))
}

func (m *ReplModel) updateLayout() {
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 10
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = m.height - 6
}

// View renders the prompt and log on the left and the tree on the right.
func (m ReplModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" Operation "),
			m.input.View(),
		))

	visible := m.log
	if logHeight > 0 && len(visible) > logHeight {
		visible = visible[len(visible)-logHeight:]
	}
	logBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(max(logHeight, 1)).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" Log "),
			strings.Join(visible, "\n"),
		))

	title := fmt.Sprintf(" Tree (%d keys, height %d) ", m.session.Tree().Len(), m.session.Tree().Height())
	if m.showHelp {
		title = " Operations "
	}
	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(m.height - 4).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			m.treeView.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox),
		treeBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatus(), m.renderHelp())
}

func (m ReplModel) renderStatus() string {
	if m.status.err != nil {
		return m.styles.ErrorMessage.Render(m.status.err.Error())
	}
	return m.styles.SuccessMessage.Render(m.status.text)
}

// renderHelp renders the key binding footer
func (m ReplModel) renderHelp() string {
	keys := []string{"enter", "f1", "ctrl+y", "pgup/pgdown", "esc"}
	descs := []string{"apply", "operations help", "copy keys", "scroll tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func runRepl(session *Session, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		NewReplModel(session, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
