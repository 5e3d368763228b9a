package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formFocus int

const (
	focusTitle formFocus = iota
	focusProject
	focusSubmit
	focusCancel
	formFocusCount
)

// formIntent is what a key press inside a form asks its owner to do.
type formIntent int

const (
	formNone formIntent = iota
	formSubmit
	formCancel
	formLeaveUp
	formLeaveDown
)

const formLabelW = 9 // "Project" + gap

// todoForm is the create/edit form: two text fields and a submit/cancel
// button pair. It never touches the store; its owner acts on the intents
// returned from Update.
type todoForm struct {
	title   textinput.Model
	project textinput.Model
	focus   formFocus
	active  bool
}

func newFormInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 0 // unlimited
	in.Width = 40
	in.SetValue(value)
	in.CursorEnd()
	return in
}

// newTodoForm seeds the fields. Empty initial values mean create mode.
func newTodoForm(title, project string) todoForm {
	return todoForm{
		title:   newFormInput("Title", title),
		project: newFormInput("Project", project),
		focus:   focusTitle,
	}
}

func (f todoForm) values() (title, project string) {
	return f.title.Value(), f.project.Value()
}

// submitLabel reads "Update" while the title has text, "Create" otherwise.
// It is a label only; empty titles still submit.
func (f todoForm) submitLabel() string {
	if f.title.Value() != "" {
		return "Update"
	}
	return "Create"
}

func (f *todoForm) focusCurrent() tea.Cmd {
	f.active = true
	f.title.Blur()
	f.project.Blur()
	switch f.focus {
	case focusTitle:
		return f.title.Focus()
	case focusProject:
		return f.project.Focus()
	}
	return nil
}

func (f *todoForm) blur() {
	f.active = false
	f.title.Blur()
	f.project.Blur()
}

func (f *todoForm) moveFocus(to formFocus) tea.Cmd {
	f.focus = (to + formFocusCount) % formFocusCount
	if !f.active {
		return nil
	}
	return f.focusCurrent()
}

func (f todoForm) update(msg tea.Msg) (todoForm, formIntent, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and friends.
		return f.forward(msg)
	}

	onButtons := f.focus == focusSubmit || f.focus == focusCancel
	switch k.String() {
	case "esc":
		return f, formCancel, nil
	case "enter":
		if f.focus == focusCancel {
			return f, formCancel, nil
		}
		return f, formSubmit, nil
	case "tab":
		cmd := f.moveFocus(f.focus + 1)
		return f, formNone, cmd
	case "shift+tab":
		cmd := f.moveFocus(f.focus - 1)
		return f, formNone, cmd
	case "up":
		switch f.focus {
		case focusTitle:
			return f, formLeaveUp, nil
		case focusProject:
			cmd := f.moveFocus(focusTitle)
			return f, formNone, cmd
		default:
			cmd := f.moveFocus(focusProject)
			return f, formNone, cmd
		}
	case "down":
		if onButtons {
			return f, formLeaveDown, nil
		}
		cmd := f.moveFocus(f.focus + 1)
		return f, formNone, cmd
	case "left", "right", " ":
		if onButtons {
			if k.String() == " " {
				if f.focus == focusCancel {
					return f, formCancel, nil
				}
				return f, formSubmit, nil
			}
			if f.focus == focusSubmit {
				f.focus = focusCancel
			} else {
				f.focus = focusSubmit
			}
			return f, formNone, nil
		}
	}
	return f.forward(msg)
}

func (f todoForm) forward(msg tea.Msg) (todoForm, formIntent, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusProject:
		f.project, cmd = f.project.Update(msg)
	}
	return f, formNone, cmd
}

// lines renders the three inner lines of a form card.
func (f todoForm) lines(innerW int) []string {
	label := styleMuted().Width(formLabelW)
	inputW := innerW - formLabelW - 2
	if inputW < 4 {
		inputW = 4
	}

	field := func(name string, in textinput.Model) string {
		in.Width = inputW
		box := lipgloss.NewStyle().Background(colorInputBg).Width(inputW + 2).Padding(0, 1)
		return label.Render(name) + box.Render(strings.ReplaceAll(in.View(), "\n", " "))
	}

	button := func(text string, color lipgloss.TerminalColor, focused bool) string {
		st := lipgloss.NewStyle().Padding(0, 2).Foreground(color).Border(lipgloss.Border{Left: "[", Right: "]"}, false, true)
		if focused && f.active {
			st = st.Foreground(colorOnButton).Background(color).Bold(true)
		}
		return st.Render(text)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button(f.submitLabel(), colorAccent, f.focus == focusSubmit),
		"  ",
		button("Cancel", colorDanger, f.focus == focusCancel),
	)

	return []string{
		field("Title", f.title),
		field("Project", f.project),
		lipgloss.PlaceHorizontal(innerW, lipgloss.Center, buttons),
	}
}
