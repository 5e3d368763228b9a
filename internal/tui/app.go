package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"todocards/internal/docs"
	"todocards/internal/logging"
	"todocards/internal/model"
	"todocards/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxContentW = 72
	minContentW = 24
	// Header, blank, blank, minibuffer, footer.
	chromeLines = 5
)

// addSlotKey identifies the add form in focus bookkeeping; task ids never
// start with a NUL byte.
const addSlotKey = "\x00add"

// appModel is the root coordinator. It owns the store reference and the
// per-slot UI state, turns component intents into store operations and
// rebuilds the list from the new snapshot after every message.
type appModel struct {
	store *store.Store
	log   *slog.Logger
	copy  func(string) error

	keys     cardKeyMap
	formKeys formKeyMap
	help     help.Model
	list     list.Model

	// items holds UI state for records currently in Editing, keyed by id.
	items      map[string]editableItem
	add        addControl
	focusedKey string

	width  int
	height int

	showHelp   bool
	minibuffer string
}

func newAppModel(st *store.Store, logger *slog.Logger) appModel {
	if st == nil {
		st = store.NewSeeded()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	m := appModel{
		store:    st,
		log:      logger,
		copy:     copyToClipboard,
		keys:     newCardKeyMap(),
		formKeys: newFormKeyMap(),
		help:     help.New(),
		list:     newCardList(),
		items:    map[string]editableItem{},
		width:    80,
		height:   24,
	}
	m.resize()
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.minibuffer = ""
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		if m.focusedKey != "" {
			cmd = m.routeToSlot(msg)
		} else {
			var quit bool
			cmd, quit = m.handleCardKey(msg)
			if quit {
				return m, tea.Quit
			}
		}

	default:
		if m.focusedKey != "" {
			cmd = m.routeToSlot(msg)
		}
	}
	return m, tea.Batch(cmd, m.refresh())
}

func (m *appModel) handleCardKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Add):
		m.list.Select(m.store.Len())
		var cmd tea.Cmd
		m.add, cmd = m.add.open()
		return cmd, false
	case key.Matches(msg, m.keys.Copy):
		if t, ok := m.selectedTask(); ok {
			if err := m.copy(clipboardText(t)); err != nil {
				m.minibuffer = "Copy failed: " + err.Error()
				m.log.Debug("clipboard.copy", "id", t.ID, "err", err)
			} else {
				m.minibuffer = "Copied"
			}
		}
	default:
		return m.routeToSlot(msg), false
	}
	return nil, false
}

// routeToSlot hands msg to the component in the selected slot and applies
// the intent it returns.
func (m *appModel) routeToSlot(msg tea.Msg) tea.Cmd {
	if t, ok := m.selectedTask(); ok {
		st, intent, cmd := m.items[t.ID].handle(t, m.keys, msg)
		if st.editing() {
			m.items[t.ID] = st
		} else {
			delete(m.items, t.ID)
		}
		m.applyItemIntent(intent)
		return cmd
	}

	ctl, intent, cmd := m.add.handle(m.keys, msg)
	m.add = ctl
	m.applyAddIntent(intent)
	return cmd
}

func (m *appModel) applyItemIntent(in itemIntent) {
	switch in.kind {
	case itemUpdate:
		ok := m.store.Update(in.id, in.title, in.project)
		m.log.Debug("task.update", "id", in.id, "title", in.title, "project", in.project, "matched", ok)
		m.minibuffer = "Updated"
	case itemDelete:
		ok := m.store.Delete(in.id)
		delete(m.items, in.id)
		m.log.Debug("task.delete", "id", in.id, "matched", ok)
		m.minibuffer = "Deleted"
	case itemLeaveUp:
		m.moveSelection(-1)
	case itemLeaveDown:
		m.moveSelection(1)
	}
}

func (m *appModel) applyAddIntent(in addIntent) {
	switch in.kind {
	case addCreate:
		t := m.store.Add(in.title, in.project)
		m.log.Debug("task.add", "id", t.ID, "title", t.Title, "project", t.Project)
		m.minibuffer = "Created"
		// Keep the add slot selected; it moved down by one.
		m.list.Select(m.store.Len())
	case addLeaveUp:
		m.moveSelection(-1)
	case addLeaveDown:
		m.moveSelection(1)
	}
}

func (m *appModel) moveSelection(delta int) {
	last := m.store.Len() // add slot
	i := m.list.Index() + delta
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}
	m.list.Select(i)
}

func (m appModel) selectedTask() (model.Task, bool) {
	tasks := m.store.Tasks()
	idx := m.list.Index()
	if idx >= 0 && idx < len(tasks) {
		return tasks[idx], true
	}
	return model.Task{}, false
}

// selectedFormKey is the key of the form that should own keyboard focus, or
// "" when the selected slot shows a card.
func (m appModel) selectedFormKey() string {
	if t, ok := m.selectedTask(); ok {
		if m.items[t.ID].editing() {
			return t.ID
		}
		return ""
	}
	if m.add.creating() {
		return addSlotKey
	}
	return ""
}

// refresh rebuilds the list from the current snapshot and moves keyboard
// focus to the selected slot's form, if any.
func (m *appModel) refresh() tea.Cmd {
	tasks := m.store.Tasks()
	pruneStates(m.items, tasks)

	var cmd tea.Cmd
	if want := m.selectedFormKey(); want != m.focusedKey {
		m.setFormFocus(m.focusedKey, false)
		cmd = m.setFormFocus(want, true)
		m.focusedKey = want
	}

	items := projectList(tasks, m.items, m.add)
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		m.list.Select(len(items) - 1)
	}
	return cmd
}

func (m *appModel) setFormFocus(k string, focused bool) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case k == "":
	case k == addSlotKey:
		if !m.add.creating() {
			return nil
		}
		if focused {
			cmd = m.add.form.focusCurrent()
		} else {
			m.add.form.blur()
		}
	default:
		st, ok := m.items[k]
		if !ok || !st.editing() {
			return nil
		}
		if focused {
			cmd = st.form.focusCurrent()
		} else {
			st.form.blur()
		}
		m.items[k] = st
	}
	return cmd
}

func (m appModel) contentWidth() int {
	w := m.width - 4
	if w > maxContentW {
		w = maxContentW
	}
	if w < minContentW {
		w = minContentW
	}
	return w
}

func (m *appModel) resize() {
	h := m.height - chromeLines
	if h < cardInnerLines+2 {
		h = cardInnerLines + 2
	}
	w := m.contentWidth()
	m.list.SetSize(w, h)
	m.help.Width = w
}

func (m appModel) View() string {
	w := m.contentWidth()

	header := lipgloss.NewStyle().Bold(true).Render("todocards") + "  " +
		styleMuted().Render(countLabel(m.store.Len(), "todo", "todos"))

	var body string
	if m.showHelp {
		md, _ := docs.Get("keys")
		body = docs.Render(md, w, markdownStyle())
	} else {
		body = m.list.View()
	}

	var footer string
	if m.focusedKey != "" {
		footer = m.help.View(m.formKeys)
	} else {
		footer = m.help.View(m.keys)
	}

	column := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		styleMuted().Render(truncateToWidth(m.minibuffer, w)),
		footer,
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, column)
}

func countLabel(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, strings.TrimSpace(many))
}
