package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/trivec"
	"github.com/wippyai/trivec/internal/ternary"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	treeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInputLength modelState = iota
	stateShowLayout
)

// elemChoices are the element descriptors the inspector can resolve against.
var elemChoices = []trivec.Elem{
	trivec.ElemOf[byte](),
	trivec.ElemOf[uint16](),
	trivec.ElemOf[uint32](),
	trivec.ElemOf[uint64](),
	trivec.ElemOf[complex128](),
	trivec.ElemOf[struct{}](),
}

type inspectorModel struct {
	err     error
	input   textinput.Model
	info    trivec.LayoutInfo
	length  int
	elemIdx int
	state   modelState
}

type resolvedMsg struct {
	err    error
	info   trivec.LayoutInfo
	length int
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "length, e.g. 8"
	ti.Prompt = "length: "
	ti.Width = 24
	ti.Focus()

	return &inspectorModel{
		input: ti,
		state: stateInputLength,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) resolve() tea.Cmd {
	raw := strings.TrimSpace(m.input.Value())
	elem := elemChoices[m.elemIdx]
	return func() tea.Msg {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return resolvedMsg{err: fmt.Errorf("%q is not a length", raw)}
		}
		info, err := trivec.Layout(n, elem)
		if err != nil {
			return resolvedMsg{err: err}
		}
		return resolvedMsg{info: info, length: n}
	}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputLength && msg.String() == "q" {
				break // let the input consume plain q
			}
			return m, tea.Quit

		case "tab":
			m.elemIdx = (m.elemIdx + 1) % len(elemChoices)
			if m.state == stateShowLayout {
				return m, m.resolve()
			}
			return m, nil

		case "enter":
			switch m.state {
			case stateInputLength:
				return m, m.resolve()
			case stateShowLayout:
				m.state = stateInputLength
				m.err = nil
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}

		case "esc":
			m.state = stateInputLength
			m.err = nil
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}

	case resolvedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateInputLength
			m.input.Focus()
			return m, textinput.Blink
		}
		m.err = nil
		m.info = msg.info
		m.length = msg.length
		m.state = stateShowLayout
		m.input.Blur()
		return m, nil
	}

	if m.state == stateInputLength {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString("\n\n")

	elem := elemChoices[m.elemIdx]
	b.WriteString(labelStyle.Render("element: "))
	b.WriteString(fmt.Sprintf("%s (size %d, align %d)\n\n", elem.Name, elem.Size, elem.Align))

	switch m.state {
	case stateInputLength:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter resolve • tab cycle element • ctrl+c quit"))

	case stateShowLayout:
		b.WriteString(m.renderLayout())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter new length • tab cycle element • q quit"))
	}

	return b.String()
}

func (m *inspectorModel) renderLayout() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("length: "))
	b.WriteString(valueStyle.Render(strconv.Itoa(m.length)))
	b.WriteString(fmt.Sprintf(" (base-3 %s)\n", ternary.Format(m.info.Digits)))

	b.WriteString(labelStyle.Render("size: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d bytes", m.info.Size)))
	b.WriteString(fmt.Sprintf(" = %d × %d, align %d\n", m.info.Count, elemChoices[m.elemIdx].Size, m.info.Align))

	b.WriteString(labelStyle.Render("depth: "))
	b.WriteString(valueStyle.Render(strconv.Itoa(m.info.Tree.Depth())))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("decomposition:"))
	b.WriteString("\n")
	if m.info.Tree == nil {
		b.WriteString(treeStyle.Render("  terminal (no elements)"))
		b.WriteString("\n")
		return b.String()
	}

	level := 0
	for node := m.info.Tree; node != nil; node = node.Sub {
		line := fmt.Sprintf("  level %d: %d direct + 3 × %d-element block",
			level, node.Direct, node.Sub.Count())
		b.WriteString(treeStyle.Render(line))
		b.WriteString("\n")
		level++
	}

	return b.String()
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
