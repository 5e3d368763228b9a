package tui

import (
	"fmt"
	"testing"

	"todocards/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func seededStore() *store.Store {
	n := 0
	return store.NewSeeded(store.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}))
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		mm, _ := m.Update(msg)
		next, ok := mm.(appModel)
		if !ok {
			t.Fatalf("expected appModel from Update; got %T", mm)
		}
		m = next
	}
	return m
}
