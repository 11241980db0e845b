// Package reveal renders the icon row uncovered by a pull-down gesture.
//
// The panel follows the drag through the swipe layout: it highlights the
// icon under the pointer, slides its selection indicator between icons, and
// plays a ripple when a release commits. When the ripple finishes it reports
// the chosen index to its ripple listener.
package reveal

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"pullmenu/internal/anim"
	"pullmenu/internal/gesture"
	"pullmenu/internal/ui"
	"pullmenu/internal/ui/textutil"
)

const (
	DefaultRadius         = 1
	DefaultGap            = 2
	DefaultRippleDuration = 300 * time.Millisecond
	DefaultGummyDuration  = 200 * time.Millisecond
	DefaultCircleColor    = ui.ColorHighlight
)

// Panel is the row of selectable icons drawn above the dragged surface.
type Panel struct {
	icons    []string
	selected int
	// indicator is the column of the selection indicator's centre; it lags
	// behind the selected slot while the gummy animation runs.
	indicator float64

	width  int
	height int

	fraction   float64
	fromCancel bool
	expanded   bool
	dragging   bool

	radius      int
	gap         int
	circleColor lipgloss.Color
	background  lipgloss.Color
	hasBgColor  bool
	pattern     []string

	rippleDuration time.Duration
	gummyDuration  time.Duration
	ripple         *anim.Animation
	gummy          *anim.Animation
	rippleProgress float64

	loading bool
	spinner spinner.Model

	onRipple func(index int)
	now      func() time.Time
}

// Ensure Panel implements View and claims pointer events.
var (
	_ ui.View           = (*Panel)(nil)
	_ ui.PointerClaimer = (*Panel)(nil)
)

// New creates an empty panel with default styling.
func New() *Panel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.Styles.Status
	return &Panel{
		selected:       -1,
		radius:         DefaultRadius,
		gap:            DefaultGap,
		circleColor:    lipgloss.Color(DefaultCircleColor),
		rippleDuration: DefaultRippleDuration,
		gummyDuration:  DefaultGummyDuration,
		spinner:        s,
		now:            time.Now,
	}
}

// SetClock replaces the time source used to start animations.
func (p *Panel) SetClock(now func() time.Time) {
	if now != nil {
		p.now = now
	}
}

// SetRippleListener registers the callback run when a ripple finishes.
func (p *Panel) SetRippleListener(fn func(index int)) { p.onRipple = fn }

// SetIcons replaces the icon labels.
func (p *Panel) SetIcons(icons []string) {
	p.icons = append([]string(nil), icons...)
	p.selected = -1
	if len(p.icons) > 0 {
		p.selectIndex(len(p.icons) / 2)
	}
}

// Icons returns the icon labels.
func (p *Panel) Icons() []string { return append([]string(nil), p.icons...) }

// SetBackgroundPattern tiles the panel with pattern and clears any
// background color.
func (p *Panel) SetBackgroundPattern(pattern string) {
	p.pattern = textutil.Cells(pattern)
	p.hasBgColor = false
}

// SetBackgroundColor fills the panel with color and clears any pattern.
func (p *Panel) SetBackgroundColor(color string) {
	p.background = lipgloss.Color(color)
	p.hasBgColor = true
	p.pattern = nil
}

// SetCircleColor sets the colour of the selection indicator and ripple.
func (p *Panel) SetCircleColor(color string) { p.circleColor = lipgloss.Color(color) }

// SetRadius sets the half-width of an icon slot. Negative values are ignored.
func (p *Panel) SetRadius(radius int) {
	if radius >= 0 {
		p.radius = radius
	}
}

// SetGap sets the columns between icon slots. Negative values are ignored.
func (p *Panel) SetGap(gap int) {
	if gap >= 0 {
		p.gap = gap
	}
}

// SetRippleDuration and SetGummyDuration set the length of the commit ripple
// and of the indicator slide.
func (p *Panel) SetRippleDuration(d time.Duration) { p.rippleDuration = d }
func (p *Panel) SetGummyDuration(d time.Duration)  { p.gummyDuration = d }

// SetSize sets the panel dimensions. The swipe layout keeps the height
// equal to the surface's top offset.
func (p *Panel) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	p.width, p.height = width, height
	if p.selected >= 0 && !p.gummyRunning() {
		p.indicator = float64(p.slotCenter(p.selected))
	}
}

// Height returns the current panel height.
func (p *Panel) Height() int { return p.height }

// Selected returns the selected icon index, or -1 without icons.
func (p *Panel) Selected() int { return p.selected }

// Fraction returns the last expand progress received.
func (p *Panel) Fraction() float64 { return p.fraction }

// Rippling reports whether a ripple is playing.
func (p *Panel) Rippling() bool { return p.ripple != nil && p.ripple.Running() }

// Loading reports whether the spinner is shown.
func (p *Panel) Loading() bool { return p.loading }

// Dragging reports whether the panel is following a drag.
func (p *Panel) Dragging() bool { return p.dragging }

// ClaimsPointer implements ui.PointerClaimer.
func (p *Panel) ClaimsPointer() bool { return true }

// OnExpand receives expand progress from the swipe layout.
func (p *Panel) OnExpand(fraction float64, fromCancel bool) {
	p.fraction = fraction
	p.fromCancel = fromCancel
}

// OnActionDown starts following a drag.
func (p *Panel) OnActionDown() {
	p.dragging = true
	p.expanded = false
	if p.selected >= 0 {
		p.indicator = float64(p.slotCenter(p.selected))
	}
}

// OnActionMove selects the icon under the pointer. The indicator slides to
// it when the panel is fully revealed.
func (p *Panel) OnActionMove(expanded bool, t *gesture.Tracker) tea.Cmd {
	p.expanded = expanded
	idx := p.indexAt(t.Point().X)
	if idx < 0 || idx == p.selected {
		return nil
	}
	if !expanded || p.gummyDuration <= 0 {
		p.selectIndex(idx)
		return nil
	}

	from := p.indicator
	p.selected = idx
	to := float64(p.slotCenter(idx))
	p.gummy = anim.New(p.gummyDuration, anim.Decelerate, func(f float64) {
		p.indicator = from + (to-from)*f
	}, nil)
	return p.gummy.Start(p.now())
}

// OnActionUpOrCancel ends the drag. A committed release plays the ripple.
func (p *Panel) OnActionUpOrCancel(expanded bool) tea.Cmd {
	p.dragging = false
	p.expanded = expanded
	if !expanded {
		return nil
	}

	index := p.selected
	p.rippleProgress = 0
	p.ripple = anim.New(p.rippleDuration, anim.Linear, func(f float64) {
		p.rippleProgress = f
	}, func() {
		p.rippleProgress = 0
		if p.onRipple != nil {
			p.onRipple(index)
		}
	})
	return p.ripple.Start(p.now())
}

// SetLoading shows or hides the loading spinner.
func (p *Panel) SetLoading(loading bool) tea.Cmd {
	p.loading = loading
	if loading {
		p.expanded = false
		return p.spinner.Tick
	}
	return nil
}

// Init implements ui.View.
func (p *Panel) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (p *Panel) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if p.ripple != nil && msg.ID == p.ripple.ID() {
			return p, p.ripple.Update(msg)
		}
		if p.gummy != nil && msg.ID == p.gummy.ID() {
			return p, p.gummy.Update(msg)
		}
	case spinner.TickMsg:
		if p.loading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
	}
	return p, nil
}

// cell is one terminal column of a rendered row.
type cell struct {
	text string
	kind cellKind
}

type cellKind uint8

const (
	cellBackground cellKind = iota
	cellIndicator
	cellIcon
	cellIconSelected
)

// View implements ui.View.
func (p *Panel) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	mid := p.height / 2
	lines := make([]string, p.height)
	for y := 0; y < p.height; y++ {
		if y == mid && p.loading {
			lines[y] = p.renderLoadingRow()
			continue
		}
		row := p.backgroundRow(y)
		if p.Rippling() {
			p.paintRipple(row, y, mid)
		}
		if y == mid {
			p.paintIcons(row)
		}
		lines[y] = p.renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func (p *Panel) backgroundRow(y int) []cell {
	row := make([]cell, p.width)
	for x := range row {
		text := " "
		if len(p.pattern) > 0 {
			text = p.pattern[(x+y)%len(p.pattern)]
			if text == "" {
				text = " "
			}
		}
		row[x] = cell{text: text, kind: cellBackground}
	}
	return row
}

// paintRipple colours every cell within the ripple's current reach of the
// selected slot. Rows count double to roughly match cell aspect ratio.
func (p *Panel) paintRipple(row []cell, y, mid int) {
	cx := p.indicator
	reach := p.rippleProgress * math.Hypot(float64(p.width), float64(2*p.height))
	for x := range row {
		dx := float64(x) - cx
		dy := float64(2 * (y - mid))
		if math.Hypot(dx, dy) <= reach {
			row[x].kind = cellIndicator
		}
	}
}

func (p *Panel) paintIcons(row []cell) {
	if len(p.icons) == 0 {
		return
	}
	showIndicator := p.selected >= 0 && (p.expanded || p.Rippling())
	if showIndicator {
		c := int(math.Round(p.indicator))
		for x := c - p.radius; x <= c+p.radius; x++ {
			if x >= 0 && x < len(row) {
				row[x].kind = cellIndicator
			}
		}
	}

	slot := p.slotWidth()
	for i, icon := range p.icons {
		start := p.slotCenter(i) - p.radius
		kind := cellIcon
		if showIndicator && i == p.selected {
			kind = cellIconSelected
		}
		for j, text := range textutil.Cells(textutil.Center(icon, slot)) {
			x := start + j
			if x < 0 || x >= len(row) || text == " " {
				continue
			}
			row[x] = cell{text: text, kind: kind}
		}
	}
}

func (p *Panel) renderLoadingRow() string {
	s := lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center)
	if p.hasBgColor {
		s = s.Background(p.background)
	}
	return s.Render(p.spinner.View())
}

func (p *Panel) renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	kind := row[0].kind
	flush := func() {
		b.WriteString(p.style(kind).Render(run.String()))
		run.Reset()
	}
	for _, c := range row {
		if c.kind != kind {
			flush()
			kind = c.kind
		}
		run.WriteString(c.text)
	}
	flush()
	return b.String()
}

func (p *Panel) style(kind cellKind) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.hasBgColor {
		s = s.Background(p.background)
	}
	switch kind {
	case cellBackground:
		if len(p.pattern) > 0 {
			s = s.Foreground(lipgloss.Color(ui.ColorDim))
		}
	case cellIndicator:
		s = s.Background(p.circleColor)
	case cellIcon:
		if p.expanded || p.loading {
			s = s.Foreground(lipgloss.Color(ui.ColorText))
		} else {
			s = s.Foreground(lipgloss.Color(ui.ColorMuted))
		}
	case cellIconSelected:
		s = s.Background(p.circleColor).
			Foreground(lipgloss.Color(ui.ColorInverse)).
			Bold(true)
	}
	return s
}

func (p *Panel) selectIndex(i int) {
	p.selected = i
	p.indicator = float64(p.slotCenter(i))
}

func (p *Panel) gummyRunning() bool { return p.gummy != nil && p.gummy.Running() }

func (p *Panel) slotWidth() int { return 2*p.radius + 1 }

func (p *Panel) rowWidth() int {
	n := len(p.icons)
	if n == 0 {
		return 0
	}
	return n*p.slotWidth() + (n-1)*p.gap
}

func (p *Panel) slotCenter(i int) int {
	left := (p.width - p.rowWidth()) / 2
	if left < 0 {
		left = 0
	}
	return left + i*(p.slotWidth()+p.gap) + p.radius
}

// indexAt returns the icon whose slot centre is nearest to column x.
func (p *Panel) indexAt(x int) int {
	best, bestDist := -1, 0
	for i := range p.icons {
		d := x - p.slotCenter(i)
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
