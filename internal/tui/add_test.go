package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAddControl_Transitions(t *testing.T) {
	keys := newCardKeyMap()
	var a addControl
	if a.creating() {
		t.Fatalf("expected Idle initially")
	}

	a, in, _ := a.handle(keys, runes("x"))
	if a.creating() || in.kind != addNone {
		t.Fatalf("expected unrelated key to keep Idle")
	}

	a, _, _ = a.handle(keys, runes("a"))
	if !a.creating() {
		t.Fatalf("expected add to open the form")
	}
	if title, project := a.form.values(); title != "" || project != "" {
		t.Fatalf("expected an empty create form; got %q/%q", title, project)
	}

	a, in, _ = a.handle(keys, keyOf(tea.KeyEsc))
	if a.creating() || in.kind != addNone {
		t.Fatalf("expected cancel to return to Idle without an intent")
	}
}

func TestAddControl_SubmitEmitsCreate(t *testing.T) {
	keys := newCardKeyMap()
	a, _ := addControl{}.open()

	a, _, _ = a.handle(keys, runes("Buy milk"))
	a, _, _ = a.handle(keys, keyOf(tea.KeyTab))
	a, _, _ = a.handle(keys, runes("Groceries"))
	a, in, _ := a.handle(keys, keyOf(tea.KeyEnter))

	if a.creating() {
		t.Fatalf("expected submit to return to Idle")
	}
	want := addIntent{kind: addCreate, title: "Buy milk", project: "Groceries"}
	if in != want {
		t.Fatalf("unexpected intent:\n got: %#v\nwant: %#v", in, want)
	}
}

func TestAddControl_EmptySubmitIsAccepted(t *testing.T) {
	a, _ := addControl{}.open()
	_, in, _ := a.handle(newCardKeyMap(), keyOf(tea.KeyEnter))
	if in.kind != addCreate || in.title != "" || in.project != "" {
		t.Fatalf("expected empty create intent; got %#v", in)
	}
}
