package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
)

// ScrollView displays text content with scrollback.
// Mouse wheel and the usual viewport keys scroll it.
type ScrollView struct {
	viewport viewport.Model
	lines    []string
}

// Ensure ScrollView implements View and the pointer capabilities.
var (
	_ View           = (*ScrollView)(nil)
	_ Scroller       = (*ScrollView)(nil)
	_ PointerClaimer = (*ScrollView)(nil)
)

const defaultScrollWidth = 80
const defaultScrollHeight = 20

// NewScrollView creates a scroll view showing content.
func NewScrollView(content string) *ScrollView {
	vp := viewport.New(defaultScrollWidth, defaultScrollHeight)
	s := &ScrollView{viewport: vp}
	s.SetContent(content)
	return s
}

// SetContent replaces the content and scrolls back to the top.
func (s *ScrollView) SetContent(content string) {
	s.lines = strings.Split(content, "\n")
	s.viewport.SetContent(content)
	s.viewport.GotoTop()
}

// Lines returns the content split into lines.
func (s *ScrollView) Lines() []string { return s.lines }

// YOffset returns the index of the first visible line.
func (s *ScrollView) YOffset() int { return s.viewport.YOffset }

// SetYOffset scrolls so that line n is the first visible line.
func (s *ScrollView) SetYOffset(n int) { s.viewport.SetYOffset(n) }

// CanScrollUp implements Scroller.
func (s *ScrollView) CanScrollUp() bool { return !s.viewport.AtTop() }

// ClaimsPointer implements PointerClaimer.
func (s *ScrollView) ClaimsPointer() bool { return true }

// Init implements View.
func (s *ScrollView) Init() tea.Cmd {
	return s.viewport.Init()
}

// Update implements View.
func (s *ScrollView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.viewport.Width = msg.Width
		s.viewport.Height = msg.Height
		// Re-set content so the viewport clamps its offset to the new height.
		s.viewport.SetContent(strings.Join(s.lines, "\n"))
		return s, nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View implements View.
func (s *ScrollView) View() string {
	return s.viewport.View()
}
