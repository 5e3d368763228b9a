package tui

import (
	"todocards/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type itemMode int

const (
	modeViewing itemMode = iota
	modeEditing
)

type itemIntentKind int

const (
	itemNone itemIntentKind = iota
	itemUpdate
	itemDelete
	itemLeaveUp
	itemLeaveDown
)

type itemIntent struct {
	kind    itemIntentKind
	id      string
	title   string
	project string
}

// editableItem is the per-record UI state: Viewing shows the display card,
// Editing shows a form seeded from the record. The zero value is Viewing.
type editableItem struct {
	mode itemMode
	form todoForm
}

func (e editableItem) editing() bool { return e.mode == modeEditing }

func (e editableItem) startEdit(t model.Task) editableItem {
	if e.mode == modeEditing {
		return e
	}
	return editableItem{mode: modeEditing, form: newTodoForm(t.Title, t.Project)}
}

func (e editableItem) handle(t model.Task, keys cardKeyMap, msg tea.Msg) (editableItem, itemIntent, tea.Cmd) {
	if e.mode == modeViewing {
		k, ok := msg.(tea.KeyMsg)
		if !ok {
			return e, itemIntent{}, nil
		}
		switch {
		case key.Matches(k, keys.Edit):
			e = e.startEdit(t)
			cmd := e.form.focusCurrent()
			return e, itemIntent{}, cmd
		case key.Matches(k, keys.Delete):
			return e, itemIntent{kind: itemDelete, id: t.ID}, nil
		}
		return e, itemIntent{}, nil
	}

	f, fi, cmd := e.form.update(msg)
	e.form = f
	switch fi {
	case formSubmit:
		title, project := f.values()
		return editableItem{}, itemIntent{kind: itemUpdate, id: t.ID, title: title, project: project}, nil
	case formCancel:
		return editableItem{}, itemIntent{}, nil
	case formLeaveUp:
		return e, itemIntent{kind: itemLeaveUp}, cmd
	case formLeaveDown:
		return e, itemIntent{kind: itemLeaveDown}, cmd
	}
	return e, itemIntent{}, cmd
}
