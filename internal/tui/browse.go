package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hnordt/wordfeel/internal/archive"
	"github.com/hnordt/wordfeel/internal/clipboard"
	"github.com/hnordt/wordfeel/internal/extract"
	"github.com/hnordt/wordfeel/internal/llm"
)

// Message types
type foundMsg struct {
	entry *archive.Entry
	dup   bool
	err   error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the archive browser.
type Model struct {
	store     *archive.Store
	client    *llm.Client
	extractor *extract.Extractor

	entries  []archive.Entry
	selected int

	input     textinput.Model
	searching bool
	finding   bool

	copied bool
	note   string
	err    error

	width  int
	height int
}

// New creates the browser model. The client may be nil; finding new
// words is then disabled but browsing still works.
func New(store *archive.Store, client *llm.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Describe the feeling..."
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	m := Model{
		store:     store,
		client:    client,
		extractor: extract.New(nil),
		input:     ti,
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	entries, err := m.store.List()
	if err != nil {
		m.err = err
		return
	}
	m.entries = entries
	if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)

	case foundMsg:
		m.finding = false
		m.searching = false
		m.input.Blur()
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.dup {
			m.note = "already in the archive"
		}
		m.reload()
		if msg.entry != nil {
			for i, e := range m.entries {
				if e.ID == msg.entry.ID {
					m.selected = i
					break
				}
			}
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
		return m, nil

	case "f", "/":
		if m.client == nil {
			m.err = fmt.Errorf("no model configured: set ANTHROPIC_API_KEY or a relay URL")
			return m, nil
		}
		m.searching = true
		m.err = nil
		m.note = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "y":
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.selected]
		text := fmt.Sprintf("%s — %s", e.Word, e.Definition)
		if err := clipboard.Write(text); err == nil {
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}
		return m, nil

	case "d":
		if len(m.entries) == 0 {
			return m, nil
		}
		if err := m.store.Delete(m.entries[m.selected].ID); err != nil {
			m.err = err
			return m, nil
		}
		m.reload()
		return m, nil
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.finding {
			m.searching = false
			m.input.Blur()
		}
		return m, nil

	case "enter":
		query := strings.TrimSpace(m.input.Value())
		if query == "" || m.finding {
			return m, nil
		}
		m.finding = true
		m.err = nil
		return m, m.findWord(query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// findWord runs the full flow off the update loop: completion,
// extraction, dedup check, save.
func (m Model) findWord(query string) tea.Cmd {
	store, client, extractor := m.store, m.client, m.extractor
	return func() tea.Msg {
		raw, err := client.FindWord(query)
		if err != nil {
			return foundMsg{err: err}
		}

		res, err := extractor.Extract(raw)
		if err != nil {
			return foundMsg{err: err}
		}
		res.Query = query

		if existing, err := store.FindWord(res.Word); err == nil && existing != nil {
			return foundMsg{entry: existing, dup: true}
		}

		id, err := store.Save(res)
		if err != nil {
			return foundMsg{err: err}
		}
		return foundMsg{entry: &archive.Entry{ID: id, Result: res}}
	}
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wordfeel archive"))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.finding {
			b.WriteString(loadingStyle.Render("Asking the model..."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}
	if m.note != "" {
		b.WriteString(copiedStyle.Render(m.note))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("No words archived yet. Press f to find one."))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), "  ", m.renderDetail()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderList() string {
	listWidth := 24

	var b strings.Builder
	for i, e := range m.entries {
		label := runewidth.Truncate(e.Word, listWidth-4, "…")
		if i == m.selected {
			b.WriteString(listItemActiveStyle.Render(label))
		} else {
			b.WriteString(listItemStyle.Render(label))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(listWidth).Render(b.String())
}

func (m Model) renderDetail() string {
	e := m.entries[m.selected]

	detailWidth := m.width - 32
	if detailWidth < 40 {
		detailWidth = 40
	}

	var b strings.Builder
	b.WriteString(wordStyle.Render(e.Word))
	b.WriteString("\n")

	if e.Pronunciation != "" {
		b.WriteString(pronStyle.Render("/" + e.Pronunciation + "/"))
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("Origin"))
	b.WriteString(valueStyle.Render(e.Origin))
	b.WriteString("\n\n")

	b.WriteString(valueStyle.Width(detailWidth - 8).Render(e.Definition))
	b.WriteString("\n\n")

	if e.Query != "" {
		b.WriteString(labelStyle.Render("Asked for"))
		b.WriteString(helpStyle.Render(runewidth.Truncate(e.Query, detailWidth-20, "…")))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Found"))
	b.WriteString(helpStyle.Render(e.Timestamp.Format("Jan 2, 2006")))

	return detailStyle.Width(detailWidth).Render(b.String())
}

func (m Model) renderHelp() string {
	if m.searching {
		return helpStyle.Render("enter: find • esc: cancel")
	}

	parts := []string{"↑/↓: navigate", "f: find a word", "y: copy", "d: delete", "q: quit"}
	help := helpStyle.Render(strings.Join(parts, " • "))
	if m.copied {
		help += "  " + copiedStyle.Render("copied!")
	}
	return help
}
