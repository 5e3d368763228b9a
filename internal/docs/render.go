package docs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	renderMu sync.Mutex
	// Keyed by style and wrap width. WithAutoStyle is avoided because it
	// queries the terminal, which can block while Bubble Tea owns stdin.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render renders markdown for a terminal. style is a glamour standard style
// name ("dark", "light", "notty", ...). On any renderer error the source is
// returned unchanged.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	style = strings.TrimSpace(style)
	if style == "" {
		style = "dark"
	}

	key := style + ":" + strconv.Itoa(width)
	renderMu.Lock()
	defer renderMu.Unlock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		renderers[key] = rr
		r = rr
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
