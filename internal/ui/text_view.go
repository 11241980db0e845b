package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pullmenu/internal/ui/textutil"
)

// TextView renders fixed text clipped to its size. It does not scroll and
// does not claim pointer events, so hosts wrap it.
type TextView struct {
	Text   string
	Style  lipgloss.Style
	width  int
	height int
}

// Ensure TextView implements View.
var _ View = (*TextView)(nil)

// NewTextView creates a text view.
func NewTextView(text string) *TextView {
	return &TextView{Text: text, Style: Styles.Normal}
}

// Init implements View.
func (t *TextView) Init() tea.Cmd { return nil }

// Update implements View.
func (t *TextView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		t.width = msg.Width
		t.height = msg.Height
	}
	return t, nil
}

// View implements View.
func (t *TextView) View() string {
	lines := strings.Split(t.Text, "\n")
	if t.height > 0 && len(lines) > t.height {
		lines = lines[:t.height]
	}
	for i, line := range lines {
		if t.width > 0 {
			line = textutil.Truncate(line, t.width)
		}
		lines[i] = t.Style.Render(line)
	}
	return strings.Join(lines, "\n")
}
