package tui

import (
	"todocards/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

// taskItem is one record projected into the list together with its UI state.
type taskItem struct {
	task  model.Task
	state editableItem
}

func (i taskItem) FilterValue() string { return i.task.Title }

// addSlotItem is the trailing add affordance.
type addSlotItem struct {
	ctl addControl
}

func (addSlotItem) FilterValue() string { return "" }

// projectList maps the snapshot, in store order, to list items keyed by id,
// followed by the add slot.
func projectList(tasks []model.Task, states map[string]editableItem, add addControl) []list.Item {
	items := make([]list.Item, 0, len(tasks)+1)
	for _, t := range tasks {
		items = append(items, taskItem{task: t, state: states[t.ID]})
	}
	return append(items, addSlotItem{ctl: add})
}

// pruneStates drops UI state for ids no longer in the snapshot, so a record
// that comes back under the same id would start in Viewing again.
func pruneStates(states map[string]editableItem, tasks []model.Task) {
	live := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		live[t.ID] = true
	}
	for id := range states {
		if !live[id] {
			delete(states, id)
		}
	}
}

func newCardList() list.Model {
	l := list.New(nil, newCardDelegate(), 0, 0)
	l.Title = "Todos"
	// Header, footer and navigation are ours; the list only lays out cards.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("todo", "todos")
	return l
}
