package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type addMode int

const (
	addIdle addMode = iota
	addCreating
)

type addIntentKind int

const (
	addNone addIntentKind = iota
	addCreate
	addLeaveUp
	addLeaveDown
)

type addIntent struct {
	kind    addIntentKind
	title   string
	project string
}

// addControl is the "+" slot after the list. Creating swaps it for an empty
// form; a submit asks the owner to append a record.
type addControl struct {
	mode addMode
	form todoForm
}

func (a addControl) creating() bool { return a.mode == addCreating }

func (a addControl) open() (addControl, tea.Cmd) {
	if a.mode == addCreating {
		return a, nil
	}
	a = addControl{mode: addCreating, form: newTodoForm("", "")}
	return a, a.form.focusCurrent()
}

func (a addControl) handle(keys cardKeyMap, msg tea.Msg) (addControl, addIntent, tea.Cmd) {
	if a.mode == addIdle {
		if k, ok := msg.(tea.KeyMsg); ok && (key.Matches(k, keys.Add) || key.Matches(k, keys.Edit)) {
			a, cmd := a.open()
			return a, addIntent{}, cmd
		}
		return a, addIntent{}, nil
	}

	f, fi, cmd := a.form.update(msg)
	a.form = f
	switch fi {
	case formSubmit:
		title, project := f.values()
		return addControl{}, addIntent{kind: addCreate, title: title, project: project}, nil
	case formCancel:
		return addControl{}, addIntent{}, nil
	case formLeaveUp:
		return a, addIntent{kind: addLeaveUp}, cmd
	case formLeaveDown:
		return a, addIntent{kind: addLeaveDown}, cmd
	}
	return a, addIntent{}, cmd
}
