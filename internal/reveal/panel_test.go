package reveal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pullmenu/internal/anim"
	"pullmenu/internal/gesture"
)

type noopCallback struct{}

func (noopCallback) OnActionDown() {}
func (noopCallback) OnBeginDragging() {}
func (noopCallback) OnActionMove(bool, *gesture.Tracker) {}
func (noopCallback) OnActionUp(bool) {}
func (noopCallback) OnActionCancel(bool) {}

var epoch = time.Unix(1700000000, 0)

// pointerAt returns a tracker whose current point is column x.
func pointerAt(x int) *gesture.Tracker {
	tr := gesture.New(noopCallback{}, gesture.DefaultConfig())
	tr.FeedTouch(tea.MouseMsg{X: x, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return tr
}

func newTestPanel(icons ...string) *Panel {
	p := New()
	p.SetClock(func() time.Time { return epoch })
	p.SetSize(20, 3)
	p.SetIcons(icons)
	return p
}

// runAnimation feeds frames to a until it stops.
func runAnimation(t *testing.T, p *Panel, a *anim.Animation) {
	t.Helper()
	require.NotNil(t, a)
	for i := 1; a.Running(); i++ {
		require.Less(t, i, 1000, "animation did not finish")
		p.Update(anim.FrameMsg{ID: a.ID(), Time: epoch.Add(time.Duration(i) * anim.FrameInterval)})
	}
}

func TestPanel_SlotGeometry(t *testing.T) {
	p := newTestPanel("a", "b", "c")

	// slot width 3, gap 2: row is 13 wide, centred in 20 columns.
	assert.Equal(t, 4, p.slotCenter(0))
	assert.Equal(t, 9, p.slotCenter(1))
	assert.Equal(t, 14, p.slotCenter(2))

	assert.Equal(t, 0, p.indexAt(0))
	assert.Equal(t, 1, p.indexAt(9))
	assert.Equal(t, 2, p.indexAt(13))
	assert.Equal(t, 2, p.indexAt(40))
}

func TestPanel_SetIconsSelectsMiddle(t *testing.T) {
	p := newTestPanel("a", "b", "c")
	assert.Equal(t, 1, p.Selected())

	p.SetIcons(nil)
	assert.Equal(t, -1, p.Selected())
}

func TestPanel_MoveBeforeRevealSelectsWithoutAnimation(t *testing.T) {
	p := newTestPanel("a", "b", "c")
	p.OnActionDown()
	cmd := p.OnActionMove(false, pointerAt(2))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, p.Selected())
	assert.Equal(t, 4.0, p.indicator)
}

func TestPanel_MoveWhenRevealedSlidesIndicator(t *testing.T) {
	p := newTestPanel("a", "b", "c")
	p.OnActionDown()

	cmd := p.OnActionMove(true, pointerAt(15))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, p.Selected())
	assert.Equal(t, 9.0, p.indicator, "indicator starts at previous slot")

	runAnimation(t, p, p.gummy)
	assert.Equal(t, 14.0, p.indicator)

	// Same slot again: nothing to animate.
	assert.Nil(t, p.OnActionMove(true, pointerAt(14)))
}

func TestPanel_CommitPlaysRippleThenReportsIndex(t *testing.T) {
	p := newTestPanel("a", "b", "c")
	var got []int
	p.SetRippleListener(func(i int) { got = append(got, i) })

	p.OnActionDown()
	p.OnActionMove(false, pointerAt(0))
	cmd := p.OnActionUpOrCancel(true)
	require.NotNil(t, cmd)
	assert.True(t, p.Rippling())
	assert.Empty(t, got, "listener waits for the ripple")

	runAnimation(t, p, p.ripple)
	assert.False(t, p.Rippling())
	assert.Equal(t, []int{0}, got)
}

func TestPanel_CommitWithoutIconsReportsMinusOne(t *testing.T) {
	p := newTestPanel()
	var got []int
	p.SetRippleListener(func(i int) { got = append(got, i) })

	p.OnActionUpOrCancel(true)
	runAnimation(t, p, p.ripple)
	assert.Equal(t, []int{-1}, got)
}

func TestPanel_CancelDoesNotRipple(t *testing.T) {
	p := newTestPanel("a")
	called := false
	p.SetRippleListener(func(int) { called = true })

	assert.Nil(t, p.OnActionUpOrCancel(false))
	assert.False(t, p.Rippling())
	assert.False(t, called)
}

func TestPanel_IgnoresForeignFrames(t *testing.T) {
	p := newTestPanel("a")
	p.OnActionUpOrCancel(true)
	_, cmd := p.Update(anim.FrameMsg{ID: -1, Time: epoch.Add(time.Hour)})
	assert.Nil(t, cmd)
	assert.True(t, p.Rippling())
}

func TestPanel_ViewSize(t *testing.T) {
	p := newTestPanel("+", "↻", "✕")
	p.SetSize(20, 0)
	assert.Equal(t, "", p.View())

	p.SetSize(20, 3)
	out := p.View()
	assert.Equal(t, 3, lipgloss.Height(out))
	assert.Equal(t, 20, lipgloss.Width(out))
	for _, icon := range []string{"+", "↻", "✕"} {
		assert.Contains(t, out, icon)
	}
}

func TestPanel_BackgroundIsExclusive(t *testing.T) {
	p := newTestPanel()
	p.SetBackgroundPattern("·")
	assert.Contains(t, p.View(), "·")

	p.SetBackgroundColor("57")
	assert.True(t, p.hasBgColor)
	assert.NotContains(t, p.View(), "·")

	p.SetBackgroundPattern("#")
	assert.False(t, p.hasBgColor)
	assert.True(t, strings.Contains(p.View(), "#"))
}

func TestPanel_Loading(t *testing.T) {
	p := newTestPanel("a")
	assert.NotNil(t, p.SetLoading(true))
	assert.True(t, p.Loading())
	assert.Equal(t, 3, lipgloss.Height(p.View()))

	assert.Nil(t, p.SetLoading(false))
	assert.False(t, p.Loading())
}

func TestPanel_OnExpand(t *testing.T) {
	p := newTestPanel()
	p.OnExpand(0.4, true)
	assert.Equal(t, 0.4, p.Fraction())
	assert.True(t, p.fromCancel)
}

func TestPanel_SettersIgnoreNegative(t *testing.T) {
	p := newTestPanel()
	p.SetRadius(-1)
	p.SetGap(-1)
	assert.Equal(t, DefaultRadius, p.radius)
	assert.Equal(t, DefaultGap, p.gap)

	p.SetRadius(2)
	p.SetGap(0)
	assert.Equal(t, 5, p.slotWidth())
}
