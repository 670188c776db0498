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
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/artistfinder/actions"
)

// Focus targets of the menu, cycled with tab.
const (
	focusActions = iota
	focusInput
	focusOutput
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	actionsList    list.Model
	textInput      textinput.Model
	outputViewport viewport.Model

	// Data
	manager *actions.Manager
	cards   *cache.Cache

	// State
	focusIndex int
	running    bool
	lastLine   string
	lastOutput string
	lastErr    error
	finishedAt time.Time
	now        func() time.Time

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles. The prompt and success colors
// follow the terminal color scheme.
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipglossColor(scheme.Accent)).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipglossColor(scheme.Success)).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// actionItem is one menu entry
type actionItem struct {
	action actions.Action
}

func (i actionItem) FilterValue() string { return i.action.Name() }
func (i actionItem) Title() string {
	return fmt.Sprintf("%d. %s", i.action.Priority(), i.action.Name())
}
func (i actionItem) Description() string { return i.action.Usage() }

// outputMsg carries the result of an action run off the event loop.
type outputMsg struct {
	line   string
	output string
	err    error
}

// InitialModel creates the menu over the actions of manager. Rendered
// artist cards are kept in cards.
func InitialModel(manager *actions.Manager, cards *cache.Cache) Model {
	items := []list.Item{}
	for _, a := range manager.Actions() {
		items = append(items, actionItem{action: a})
	}
	actionsList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	actionsList.SetShowTitle(false)
	actionsList.SetShowHelp(false)
	actionsList.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Pick an action or type e.g. show 40"
	ti.CharLimit = 256
	ti.Width = 50

	styles := NewStyles()
	ti.PromptStyle = styles.InputPrompt

	outputViewport := viewport.New(0, 0)
	outputViewport.SetContent("Select an action and press enter.")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		actionsList:     actionsList,
		textInput:       ti,
		outputViewport:  outputViewport,
		manager:         manager,
		cards:           cards,
		focusIndex:      focusActions,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		now:             time.Now,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case outputMsg:
		m.running = false
		m.lastLine = msg.line
		m.lastErr = msg.err
		m.finishedAt = m.now()
		if msg.err != nil {
			m.lastOutput = msg.err.Error()
			m.outputViewport.SetContent(m.styles.ErrorMessage.Render(m.lastOutput))
		} else {
			m.lastOutput = msg.output
			m.outputViewport.SetContent(msg.output)
		}
		m.outputViewport.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setFocus(i int) {
	m.focusIndex = i % focusCount
	if m.focusIndex == focusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

// updateKeys handles key events for the focused component
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus(m.focusIndex + 1)
		return m, nil
	case "shift+tab":
		m.setFocus(m.focusIndex + focusCount - 1)
		return m, nil
	case "ctrl+y":
		if m.lastOutput == "" {
			return m, nil
		}
		text := m.lastOutput
		return m, func() tea.Msg {
			copyToClipboard(text)
			return nil
		}
	case "ctrl+l":
		m.textInput.Reset()
		return m, nil
	case "enter":
		switch m.focusIndex {
		case focusActions:
			item, ok := m.actionsList.SelectedItem().(actionItem)
			if !ok {
				return m, nil
			}
			m.textInput.SetValue(item.action.Name() + " ")
			m.textInput.CursorEnd()
			m.setFocus(focusInput)
			return m, nil
		case focusInput:
			line := strings.TrimSpace(m.textInput.Value())
			if line == "" || m.running {
				return m, nil
			}
			m.running = true
			m.outputViewport.SetContent(fmt.Sprintf("Running %s ...", line))
			return m, m.execute(line)
		}
	}

	switch m.focusIndex {
	case focusActions:
		m.actionsList, cmd = m.actionsList.Update(msg)
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case focusOutput:
		m.outputViewport, cmd = m.outputViewport.Update(msg)
	}
	return m, cmd
}

// execute runs line as a tea.Cmd so slow loads do not block the UI.
func (m Model) execute(line string) tea.Cmd {
	manager, cards, renderer := m.manager, m.cards, m.glamourRenderer
	return func() tea.Msg {
		parts, err := shellwords.Parse(line)
		if err != nil {
			return outputMsg{line: line, err: err}
		}
		if card, ok := renderCard(manager, cards, renderer, parts); ok {
			return outputMsg{line: line, output: card}
		}
		out, err := manager.RunParts(context.Background(), parts)
		return outputMsg{line: line, output: out, err: err}
	}
}

// renderCard answers "show <id>" with the artist's markdown card, reusing
// a cached rendering when there is one. It reports false for any other
// line and for unknown artists, which the show action itself handles.
func renderCard(manager *actions.Manager, cards *cache.Cache, renderer *glamour.TermRenderer, parts []string) (string, bool) {
	if len(parts) != 2 {
		return "", false
	}
	a, ok := manager.Lookup(strings.ToLower(parts[0]))
	if !ok || a.Name() != "show" {
		return "", false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}

	if card := GetCard(cards, id); card != "" {
		return card, true
	}
	artist, err := manager.Env().Finder.Lookup(id)
	if err != nil {
		return "", false
	}

	card := artist.Markdown()
	if renderer != nil {
		if rendered, err := renderer.Render(card); err == nil {
			card = rendered
		}
	}
	CacheCard(cards, id, card)
	return card, true
}

// View renders the menu
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	boxStyle := func(focus int) lipgloss.Style {
		if m.focusIndex == focus {
			return m.styles.BorderFocused
		}
		return m.styles.BorderBlurred
	}
	title := func(focus int, name string) string {
		if m.focusIndex == focus {
			name += " (Active)"
		}
		return name + " "
	}

	listBox := boxStyle(focusActions).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(title(focusActions, " 🎵 Actions")),
			m.actionsList.View(),
		))

	m.textInput.Width = leftWidth - 4
	inputBox := boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(title(focusInput, " ⌨ Command")),
			m.textInput.View(),
		))

	outputTitle := " 📋 Output"
	if m.lastLine != "" {
		outputTitle += ": " + m.lastLine
	}
	outputBox := boxStyle(focusOutput).
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(title(focusOutput, outputTitle)),
			m.outputViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		listBox,
		inputBox,
	)

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		outputBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderHelp(),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.actionsList.SetSize(leftWidth-2, listHeight-2)
	m.outputViewport.Width = rightWidth - 2
	m.outputViewport.Height = listHeight + inputHeight
}

// renderHelp renders the key bindings footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "ctrl+y", "ctrl+l", "esc"}
	descs := []string{"pick / run", "switch focus", "copy output", "clear command", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	status := ""
	if m.running {
		status = m.styles.SuccessMessage.Render("  running…")
	} else if m.lastErr != nil {
		status = m.styles.ErrorMessage.Render("  failed at " + FormatTime(m.finishedAt))
	} else if m.lastLine != "" {
		status = m.styles.SuccessMessage.Render("  ✓ done at " + FormatTime(m.finishedAt))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • ") + status)
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%d bytes%s to clipboard.\n", Green, len(text), Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(manager *actions.Manager, cards *cache.Cache) error {
	model := InitialModel(manager, cards)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
