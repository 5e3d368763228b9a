package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cardInnerLines = 3

type cardDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	editing  lipgloss.Style

	title lipgloss.Style
	meta  lipgloss.Style
}

func newCardDelegate() cardDelegate {
	base := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	return cardDelegate{
		normal:   base,
		selected: base.BorderForeground(colorSelected),
		editing:  base.BorderForeground(colorAccent),
		title:    lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		meta:     lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (d cardDelegate) Height() int  { return cardInnerLines + 2 }
func (d cardDelegate) Spacing() int { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	selected := index == m.Index()
	card := d.normal
	if selected {
		card = d.selected
	}

	innerW := m.Width() - card.GetHorizontalFrameSize()
	if innerW < 8 {
		fmt.Fprint(w, "")
		return
	}

	var lines []string
	switch it := item.(type) {
	case taskItem:
		if it.state.editing() {
			card = d.editing
			lines = it.state.form.lines(innerW)
		} else {
			lines = d.displayLines(it, innerW, selected)
		}
	case addSlotItem:
		if it.ctl.creating() {
			card = d.editing
			lines = it.ctl.form.lines(innerW)
		} else {
			lines = d.addLines(innerW, selected)
		}
	default:
		lines = []string{truncateToWidth(fmt.Sprint(item), innerW)}
	}

	for len(lines) < cardInnerLines {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padOrCut(lines[i], innerW)
	}
	fmt.Fprint(w, card.Width(innerW+card.GetHorizontalPadding()).Render(strings.Join(lines, "\n")))
}

// displayLines renders a read-only card: title, project, and the edit/delete
// affordances on the right.
func (d cardDelegate) displayLines(it taskItem, innerW int, selected bool) []string {
	title := d.title.Render(truncateToWidth(it.task.Title, innerW))
	if it.task.Title == "" {
		title = styleMuted().Italic(true).Render("(no title)")
	}
	project := d.meta.Render(truncateToWidth(it.task.Project, innerW))

	hint := "e edit  d delete"
	hintSt := styleMuted()
	if selected {
		hintSt = lipgloss.NewStyle().Foreground(colorAccent)
	}
	actions := lipgloss.PlaceHorizontal(innerW, lipgloss.Right, hintSt.Render(hint))
	return []string{title, project, actions}
}

func (d cardDelegate) addLines(innerW int, selected bool) []string {
	st := styleMuted()
	if selected {
		st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	}
	return []string{
		"",
		lipgloss.PlaceHorizontal(innerW, lipgloss.Center, st.Render("+  add")),
		"",
	}
}
