// Package ui is the terminal picker: a searchable emoji grid with a
// Recent tab, mirroring the desktop picker's layout.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emojipick/internal/clipboard"
	"emojipick/internal/config"
	"emojipick/internal/emoji"
	"emojipick/internal/recent"
	"emojipick/internal/theme"
)

type tab int

const (
	tabRecent tab = iota
	tabAll
)

// cellWidth is the rendered width of one grid cell: emoji (double
// width) plus padding.
const cellWidth = 4

type Model struct {
	width  int
	height int

	input     textinput.Model
	activeTab tab

	loaded  bool
	entries []emoji.Entry // full dataset
	visible []emoji.Entry // filter applied, All tab
	byChar  map[string]emoji.Entry
	recents []string

	selected int
	status   string
	loadErr  error

	cfg   config.Config
	th    theme.Theme
	store recent.Store
}

type entriesMsg struct {
	entries []emoji.Entry
	recents []string
	err     error
}

type copiedMsg struct {
	char    string
	recents []string
	err     error
}

func NewModel(cfg config.Config, th theme.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "type to search emojis"
	ti.Prompt = "🔍 "
	ti.Focus()
	applyTheme(th)
	return Model{
		input:     ti,
		activeTab: tabAll,
		cfg:       cfg,
		th:        th,
	}
}

func (m Model) Init() tea.Cmd {
	store := m.store
	return tea.Batch(
		func() tea.Msg {
			entries, err := emoji.Load()
			recents, _ := store.Load()
			return entriesMsg{entries: entries, recents: recents, err: err}
		},
		themeWatchStartCmd(m.cfg.Theme),
		textinput.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case entriesMsg:
		m.loaded = true
		m.loadErr = msg.err
		m.entries = msg.entries
		m.visible = msg.entries
		m.recents = msg.recents
		m.byChar = make(map[string]emoji.Entry, len(msg.entries))
		for _, e := range msg.entries {
			m.byChar[e.Char] = e
		}
		if len(m.recents) == 0 {
			m.activeTab = tabAll
		} else {
			m.activeTab = tabRecent
		}
		m.selected = 0
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "✗ copy failed: " + msg.err.Error()
			return m, nil
		}
		m.recents = msg.recents
		m.status = fmt.Sprintf("✓ %s copied to clipboard", msg.char)
		return m, nil

	case themeTickMsg:
		m.th = msg.Theme
		applyTheme(msg.Theme)
		return m, themeWatchWaitCmd(m.cfg.Theme)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.input.Value() != "" {
				m.input.SetValue("")
				return m.refilter(), nil
			}
			return m, tea.Quit
		case "tab":
			if m.activeTab == tabRecent {
				m.activeTab = tabAll
			} else {
				m.activeTab = tabRecent
			}
			m.selected = 0
			return m, nil
		case "left":
			return m.move(-1), nil
		case "right":
			return m.move(1), nil
		case "up":
			return m.move(-m.cols()), nil
		case "down":
			return m.move(m.cols()), nil
		case "enter":
			return m, m.copySelected()
		}
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m = m.refilter()
		}
		return m, cmd
	}
	return m, nil
}

// refilter recomputes the All-tab view from the query and jumps to it,
// matching the desktop picker where searching always searches all
// emojis.
func (m Model) refilter() Model {
	m.visible = emoji.Search(m.entries, m.input.Value())
	if m.input.Value() != "" {
		m.activeTab = tabAll
	}
	m.selected = 0
	return m
}

// current is the entry list behind the active tab.
func (m Model) current() []emoji.Entry {
	if m.activeTab == tabRecent {
		out := make([]emoji.Entry, 0, len(m.recents))
		for _, c := range m.recents {
			if e, ok := m.byChar[c]; ok {
				out = append(out, e)
			} else {
				// Recents written by the desktop picker may reference
				// emojis outside our dataset; still show them.
				out = append(out, emoji.Entry{Char: c})
			}
		}
		return out
	}
	return m.visible
}

func (m Model) cols() int {
	c := (m.width - 2) / cellWidth
	if c < 1 {
		c = 1
	}
	return c
}

func (m Model) move(delta int) Model {
	list := m.current()
	if len(list) == 0 {
		return m
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(list) {
		next = len(list) - 1
	}
	m.selected = next
	return m
}

func (m Model) copySelected() tea.Cmd {
	list := m.current()
	if m.selected < 0 || m.selected >= len(list) {
		return nil
	}
	char := list[m.selected].Char
	store := m.store
	recents := m.recents
	maxRecent := m.cfg.MaxRecent
	return func() tea.Msg {
		if err := clipboard.Copy(char); err != nil {
			return copiedMsg{char: char, err: err}
		}
		updated := recent.Push(recents, char, maxRecent)
		_ = store.Save(updated)
		return copiedMsg{char: char, recents: updated}
	}
}

func (m Model) View() string {
	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render("🎨 Emoji Picker"))
	fmt.Fprintln(&b, m.renderTabs())
	fmt.Fprintln(&b, m.input.View())

	switch {
	case !m.loaded:
		fmt.Fprintln(&b, "loading emojis…")
	case m.loadErr != nil:
		fmt.Fprintln(&b, "error: "+m.loadErr.Error())
	default:
		b.WriteString(m.renderGrid())
	}

	if m.status != "" {
		fmt.Fprintln(&b, statusStyle.Render(m.status))
	}
	fmt.Fprintln(&b, helpStyle.Render("enter copy  tab recent/all  arrows move  esc clear/quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	recentLabel := fmt.Sprintf("⭐ Recent (%d)", len(m.recents))
	allLabel := fmt.Sprintf("😀 All (%d)", len(m.visible))
	if m.activeTab == tabRecent {
		return tabActiveStyle.Render(recentLabel) + tabStyle.Render(allLabel)
	}
	return tabStyle.Render(recentLabel) + tabActiveStyle.Render(allLabel)
}

func (m Model) renderGrid() string {
	list := m.current()
	if len(list) == 0 {
		if m.activeTab == tabRecent {
			return "no recent emojis\n"
		}
		return fmt.Sprintf("no emojis found for %q\n", m.input.Value())
	}

	cols := m.cols()
	rows := (len(list) + cols - 1) / cols
	// Keep the selection on screen: scroll whole rows.
	visRows := m.height - 7
	if visRows < 1 {
		visRows = 1
	}
	selRow := m.selected / cols
	firstRow := 0
	if selRow >= visRows {
		firstRow = selRow - visRows + 1
	}

	var b strings.Builder
	name := ""
	for row := firstRow; row < rows && row < firstRow+visRows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(list) {
				break
			}
			if i == m.selected {
				b.WriteString(selectedStyle.Render(list[i].Char))
				name = list[i].Name
			} else {
				b.WriteString(cellStyle.Render(list[i].Char))
			}
		}
		b.WriteString("\n")
	}
	if name != "" {
		b.WriteString(statusStyle.Render(name) + "\n")
	}
	return b.String()
}
