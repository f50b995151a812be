package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/client"
)

func TestCategoryLabel(t *testing.T) {
	work := "1"
	personal := "2"
	other := "3"
	unknown := "9"
	empty := ""

	assert.Equal(t, "-", CategoryLabel(nil))
	assert.Equal(t, "-", CategoryLabel(&empty))
	assert.Equal(t, "Work", CategoryLabel(&work))
	assert.Equal(t, "Personal", CategoryLabel(&personal))
	assert.Equal(t, "Other", CategoryLabel(&other))
	assert.Equal(t, "9", CategoryLabel(&unknown))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_ItemsMsgPopulatesList(t *testing.T) {
	m := NewModel(nil)

	updated, _ := m.Update(itemsMsg{items: []client.TodoItem{{ID: 1, Title: "Buy milk"}}})
	model := updated.(*Model)

	assert.False(t, model.loading)
	require.Len(t, model.items, 1)
	assert.Equal(t, "Buy milk", model.items[0].Title)
}

func TestModel_InFlightBlocksSecondSubmission(t *testing.T) {
	m := NewModel(nil)
	m.items = []client.TodoItem{{ID: 1, Title: "Buy milk"}}
	m.loading = false

	// First toggle marks the row in flight and issues a command
	updated, cmd := m.Update(keyMsg(" "))
	model := updated.(*Model)
	require.NotNil(t, cmd)
	require.NotNil(t, model.inFlightID)
	assert.Equal(t, uint64(1), *model.inFlightID)

	// While the mutation is outstanding, toggle and delete are ignored
	_, cmd = model.Update(keyMsg(" "))
	assert.Nil(t, cmd)
	_, cmd = model.Update(keyMsg("d"))
	assert.Nil(t, cmd)
}

func TestModel_ToggledMsgClearsInFlight(t *testing.T) {
	m := NewModel(nil)
	m.items = []client.TodoItem{{ID: 1, Title: "Buy milk"}}
	id := uint64(1)
	m.inFlightID = &id

	updated, cmd := m.Update(toggledMsg{id: 1})
	model := updated.(*Model)

	assert.Nil(t, model.inFlightID)
	// The success path triggers a refetch
	assert.NotNil(t, cmd)
}

func TestModel_ErrMsgClearsInFlightAndNotifies(t *testing.T) {
	m := NewModel(nil)
	id := uint64(1)
	m.inFlightID = &id

	updated, _ := m.Update(errMsg{err: errors.New("No todo updated")})
	model := updated.(*Model)

	assert.Nil(t, model.inFlightID)
	assert.True(t, model.noticeErr)
	assert.Equal(t, "No todo updated", model.notice)
}

func TestModel_AddFormRequiresText(t *testing.T) {
	m := NewModel(nil)
	m.loading = false

	updated, _ := m.Update(keyMsg("a"))
	model := updated.(*Model)
	assert.Equal(t, modeAdd, model.mode)

	// Submitting an empty form does nothing
	_, cmd := model.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.False(t, model.creating)

	// Type a title, cycle to the first category, submit
	updated, _ = model.Update(keyMsg("Buy milk"))
	model = updated.(*Model)
	updated, _ = model.Update(keyMsg("tab"))
	model = updated.(*Model)
	assert.Equal(t, 0, model.categoryIdx)

	_, cmd = model.Update(keyMsg("enter"))
	assert.NotNil(t, cmd)
	assert.True(t, model.creating)
}

func TestModel_AddFormCancel(t *testing.T) {
	m := NewModel(nil)
	m.mode = modeAdd
	m.input = "half-typed"

	updated, _ := m.Update(keyMsg("esc"))
	model := updated.(*Model)

	assert.Equal(t, modeBrowse, model.mode)
	assert.Empty(t, model.input)
}
