package tui

import (
	"strings"

	"todocards/internal/model"

	"github.com/atotto/clipboard"
)

func copyToClipboard(s string) error {
	return clipboard.WriteAll(strings.ReplaceAll(s, "\r\n", "\n"))
}

func clipboardText(t model.Task) string {
	if strings.TrimSpace(t.Project) == "" {
		return t.Title
	}
	return t.Title + " (" + t.Project + ")"
}
