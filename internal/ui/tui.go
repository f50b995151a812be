// Package ui provides the terminal interface for the to-do client.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todoapp/internal/client"
)

// Category is one entry of the fixed client-side category list. Categories
// are not persisted or validated server-side.
type Category struct {
	ID    string
	Label string
}

// Categories is the fixed category list.
var Categories = []Category{
	{ID: "1", Label: "Work"},
	{ID: "2", Label: "Personal"},
	{ID: "3", Label: "Other"},
}

// CategoryLabel resolves a category id to its label. Unknown ids render
// as-is since the server never validates them.
func CategoryLabel(id *string) string {
	if id == nil || *id == "" {
		return "-"
	}
	for _, cat := range Categories {
		if cat.ID == *id {
			return cat.Label
		}
	}
	return *id
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
)

// Model is the bubbletea model for the to-do list.
type Model struct {
	client *client.Client

	items   []client.TodoItem
	cursor  int
	mode    mode
	loading bool

	// Add form state
	input       string
	categoryIdx int // index into Categories, -1 = none

	// inFlightID disables toggle/delete for one row while its mutation is
	// outstanding. It guards against a second click, not a network race.
	inFlightID *uint64
	creating   bool

	notice    string
	noticeErr bool

	quitting bool
}

// NewModel creates the initial model.
func NewModel(c *client.Client) *Model {
	return &Model{
		client:      c,
		categoryIdx: -1,
		loading:     true,
	}
}

type itemsMsg struct {
	items []client.TodoItem
}

type createdMsg struct{}

type toggledMsg struct {
	id uint64
}

type deletedMsg struct {
	id uint64
}

type errMsg struct {
	err error
}

type clearNoticeMsg struct{}

func (m *Model) fetchItems() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		items, err := c.GetItems(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return itemsMsg{items: items}
	}
}

func (m *Model) createTodo(text string, categoryID *string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		if _, err := c.CreateTodo(context.Background(), text, categoryID); err != nil {
			return errMsg{err: err}
		}
		return createdMsg{}
	}
}

func (m *Model) toggleCompletion(item client.TodoItem) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		if err := c.UpdateCompletion(context.Background(), item.ID, !item.IsCompleted); err != nil {
			return errMsg{err: err}
		}
		return toggledMsg{id: item.ID}
	}
}

func (m *Model) deleteItem(id uint64) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		if err := c.DeleteItem(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return deletedMsg{id: id}
	}
}

func clearNoticeAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.fetchItems()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.items = msg.items
		m.loading = false
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case createdMsg:
		m.creating = false
		m.input = ""
		m.categoryIdx = -1
		m.mode = modeBrowse
		m.notice = "ToDo created"
		m.noticeErr = false
		return m, tea.Batch(m.fetchItems(), clearNoticeAfter())

	case toggledMsg:
		m.clearInFlight(msg.id)
		return m, m.fetchItems()

	case deletedMsg:
		m.clearInFlight(msg.id)
		m.notice = "ToDo deleted"
		m.noticeErr = false
		return m, tea.Batch(m.fetchItems(), clearNoticeAfter())

	case errMsg:
		m.inFlightID = nil
		m.creating = false
		m.loading = false
		m.notice = msg.err.Error()
		m.noticeErr = true
		return m, clearNoticeAfter()

	case clearNoticeMsg:
		m.notice = ""
		m.noticeErr = false
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "a":
		m.mode = modeAdd
		m.input = ""
		m.categoryIdx = -1

	case "r":
		m.client.InvalidateList()
		m.loading = true
		return m, m.fetchItems()

	case " ", "enter":
		if item, ok := m.selected(); ok && !m.rowInFlight(item.ID) {
			id := item.ID
			m.inFlightID = &id
			return m, m.toggleCompletion(item)
		}

	case "d":
		if item, ok := m.selected(); ok && !m.rowInFlight(item.ID) {
			id := item.ID
			m.inFlightID = &id
			return m, m.deleteItem(id)
		}
	}

	return m, nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input = ""
		m.categoryIdx = -1

	case "tab":
		// Cycle: none -> Work -> Personal -> Other -> none
		m.categoryIdx++
		if m.categoryIdx >= len(Categories) {
			m.categoryIdx = -1
		}

	case "enter":
		text := strings.TrimSpace(m.input)
		if text == "" || m.creating {
			return m, nil
		}
		m.creating = true
		var categoryID *string
		if m.categoryIdx >= 0 {
			id := Categories[m.categoryIdx].ID
			categoryID = &id
		}
		return m, m.createTodo(text, categoryID)

	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
	}

	return m, nil
}

func (m *Model) selected() (client.TodoItem, bool) {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return client.TodoItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) rowInFlight(id uint64) bool {
	return m.inFlightID != nil && *m.inFlightID == id
}

func (m *Model) clearInFlight(id uint64) {
	if m.inFlightID != nil && *m.inFlightID == id {
		m.inFlightID = nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("ToDo"))
	b.WriteString("\n\n")

	if m.notice != "" {
		if m.noticeErr {
			b.WriteString(errorStyle.Render(m.notice))
		} else {
			b.WriteString(noticeStyle.Render(m.notice))
		}
		b.WriteString("\n\n")
	}

	if m.mode == modeAdd {
		b.WriteString(m.viewForm())
		b.WriteString("\n")
	}

	b.WriteString(m.viewTable())
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(helpStyle.Render("enter: add • tab: category • esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("a: add • space: toggle • d: delete • r: refresh • q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *Model) viewForm() string {
	category := "none"
	if m.categoryIdx >= 0 {
		category = Categories[m.categoryIdx].Label
	}
	return fmt.Sprintf("  Task name: %s█\n  Category:  %s\n", m.input, category)
}

func (m *Model) viewTable() string {
	if m.loading {
		return dimStyle.Render("  Loading...") + "\n"
	}
	if len(m.items) == 0 {
		return dimStyle.Render("  No to-dos yet. Press 'a' to add one.") + "\n"
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-4s %-32s %-10s %-10s %s", "ID", "TITLE", "CATEGORY", "STATUS", "CREATED")))
	b.WriteString("\n")

	for i, item := range m.items {
		badge := pendingStyle.Render("Pending")
		if item.IsCompleted {
			badge = doneStyle.Render("Completed")
		}
		if m.rowInFlight(item.ID) {
			badge = dimStyle.Render("...")
		}

		row := fmt.Sprintf("  %-4d %-32s %-10s %-10s %s",
			item.ID,
			truncate(item.Title, 32),
			CategoryLabel(item.CategoryID),
			badge,
			item.CreatedAt.Local().Format("2006-01-02 15:04"),
		)

		if i == m.cursor && m.mode == modeBrowse {
			row = selectedStyle.Render("> " + strings.TrimPrefix(row, "  "))
		}

		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Run starts the TUI and blocks until it exits.
func Run(ctx context.Context, c *client.Client) error {
	program := tea.NewProgram(NewModel(c), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
