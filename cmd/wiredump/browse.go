package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/displaywire/displaylist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func runBrowse(args []string, stderr io.Writer) error {
	var (
		common  commonFlags
		compact bool
	)
	fs := newFlagSet("browse", stderr, &common)
	fs.BoolVar(&compact, "compact", false, "the file uses LEB128 integers")
	if err := parse(fs, args, &common, stderr); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		printUsage(stderr)
		return errUsage
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse needs a terminal, use dump instead")
	}

	p := tea.NewProgram(newBrowseModel(fs.Arg(0), compact), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type browseState int

const (
	stateList browseState = iota
	stateDetail
	stateJump
)

type browseModel struct {
	err      error
	filename string
	items    []displaylist.DisplayItem
	jump     textinput.Model
	size     int
	selected int
	top      int
	height   int
	state    browseState
	compact  bool
	loaded   bool
}

type loadedMsg struct {
	err   error
	items []displaylist.DisplayItem
	size  int
}

func newBrowseModel(filename string, compact bool) *browseModel {
	return &browseModel{
		filename: filename,
		compact:  compact,
		height:   20,
		state:    stateList,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load
}

func (m *browseModel) load() tea.Msg {
	items, size, err := loadList(m.filename, m.compact)
	return loadedMsg{items: items, size: size, err: err}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, blank line and help take four rows
		m.height = max(msg.Height-4, 1)
		m.scroll()

	case loadedMsg:
		m.loaded = true
		m.err = msg.err
		m.items = msg.items
		m.size = msg.size

	case tea.KeyMsg:
		if m.state == stateJump {
			return m.updateJump(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.items)-1 {
				m.selected++
			}

		case "home", "g":
			m.selected = 0

		case "end", "G":
			m.selected = max(len(m.items)-1, 0)

		case "enter":
			switch m.state {
			case stateList:
				if len(m.items) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateList
			}

		case "esc":
			m.state = stateList

		case "/", ":":
			if m.state == stateList && len(m.items) > 0 {
				m.jump = textinput.New()
				m.jump.Placeholder = fmt.Sprintf("0-%d", len(m.items)-1)
				m.jump.Prompt = "item #"
				m.jump.Width = 10
				m.jump.Focus()
				m.state = stateJump
				return m, textinput.Blink
			}
		}
		m.scroll()
	}

	return m, nil
}

func (m *browseModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateList
		return m, nil

	case "enter":
		if n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value())); err == nil && n >= 0 && n < len(m.items) {
			m.selected = n
			m.scroll()
		}
		m.state = stateList
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// scroll keeps the selected row inside the visible window.
func (m *browseModel) scroll() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+m.height {
		m.top = m.selected - m.height + 1
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.loaded {
		return "Loading display list..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Display List"))
	fmt.Fprintf(&b, " %s (%d items, %d bytes)\n\n", m.filename, len(m.items), m.size)

	switch m.state {
	case stateList, stateJump:
		end := min(m.top+m.height, len(m.items))
		for i := m.top; i < end; i++ {
			line := m.row(i)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateJump {
			b.WriteString(m.jump.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter jump • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • / jump • q quit"))
		}

	case stateDetail:
		item := m.items[m.selected]
		fmt.Fprintf(&b, "Item #%d %s\n\n", m.selected, item.Item.Kind())
		b.WriteString(detailStyle.Render(itemDetail(item)))
		fmt.Fprintf(&b, "\n\nrect %s\nclip %s", formatRect(item.Rect), formatRect(item.Clip.Main))
		if !item.Clip.Complex.Empty() {
			fmt.Fprintf(&b, " + %d complex regions at %d", item.Clip.Complex.Length, item.Clip.Complex.Start)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func (m *browseModel) row(i int) string {
	item := m.items[i]
	kind := item.Item.Kind()
	if kind == "" {
		kind = "?"
	}
	return fmt.Sprintf("#%-3d %-10s %s", i, kind, formatRect(item.Rect))
}
