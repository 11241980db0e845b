// Package swipe implements the pull-down-to-reveal gesture container.
//
// A Layout hosts one content surface and a reveal.Panel. Dragging the
// surface down with the mouse uncovers the panel's icon row; releasing past
// the commit threshold confirms the icon under the pointer and holds the
// layout in a loading state until the host calls Complete. Releasing earlier
// snaps the surface back with an animated recoil.
//
// All methods must be called from the Bubble Tea update goroutine. Work the
// layout needs done later (animation frames, spinner ticks, selection
// messages) is returned as a tea.Cmd from Update and Complete.
package swipe

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pullmenu/internal/anim"
	"pullmenu/internal/gesture"
	"pullmenu/internal/reveal"
	"pullmenu/internal/status"
	"pullmenu/internal/ui"
)

// DefaultCollapseDuration is the default length of the snap-back animation.
const DefaultCollapseDuration = 300 * time.Millisecond

// CompleteMsg asks a Layout to finish loading. Send it with
// tea.Program.Send when the work started by a selection ends on another
// goroutine.
type CompleteMsg struct{}

// ItemSelectedMsg is emitted when a selection is confirmed.
type ItemSelectedMsg struct {
	Index int
}

type padding struct {
	top, right, bottom, left int
}

// Layout is the gesture orchestrator. It implements ui.View for its host and
// gesture.Callback for its tracker.
type Layout struct {
	children    []ui.View
	target      ui.View
	targetIndex int

	panel   *reveal.Panel
	tracker *gesture.Tracker
	status  *status.Machine

	listeners      Listeners
	onItemSelected func(index int)
	observer       Observer

	collapseDuration time.Duration
	recoil           *anim.Animation
	animationStarted bool

	// top is the surface's offset from its resting row.
	top          int
	width        int
	height       int
	pad          padding
	originX      int
	originY      int
	layoutPasses int

	// owning is set while the layout holds the pointer stream.
	owning  bool
	pending []tea.Cmd
	now     func() time.Time
}

// Ensure Layout implements the view and tracker callback contracts.
var (
	_ ui.View          = (*Layout)(nil)
	_ gesture.Callback = (*Layout)(nil)
)

// Option configures a Layout at construction.
type Option func(*options)

type options struct {
	tracker  gesture.Config
	now      func() time.Time
	observer Observer
	pad      padding
	config   *Config
}

// WithTrackerConfig sets the drag tracker's slop, threshold and limits.
func WithTrackerConfig(cfg gesture.Config) Option {
	return func(o *options) { o.tracker = cfg }
}

// WithClock replaces the time source used to start animations.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver registers a lifecycle observer.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithPadding insets the surface and panel inside the layout.
func WithPadding(top, right, bottom, left int) Option {
	return func(o *options) {
		o.pad = padding{top: max(top, 0), right: max(right, 0), bottom: max(bottom, 0), left: max(left, 0)}
	}
}

// WithConfig applies cfg once the layout is built.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = &cfg }
}

// New creates a layout with no surface. Add one with AddChild.
func New(opts ...Option) *Layout {
	o := options{
		tracker:  gesture.DefaultConfig(),
		now:      time.Now,
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.observer == nil {
		o.observer = NoopObserver{}
	}

	l := &Layout{
		targetIndex:      -1,
		status:           status.NewMachine(),
		observer:         o.observer,
		collapseDuration: DefaultCollapseDuration,
		pad:              o.pad,
		now:              o.now,
	}
	l.status.OnChange = func(from, to status.Status) {
		l.observer.OnStatusChange(from, to)
	}
	l.tracker = gesture.New(l, o.tracker)
	l.tracker.SetOrigin(l.pad.left, l.pad.top)

	l.panel = reveal.New()
	l.panel.SetClock(l.now)
	l.panel.SetRippleListener(l.onRippleFinished)
	l.children = append(l.children, l.panel)
	l.AddOnExpandListener(l.panel)

	if o.config != nil {
		Apply(l, *o.config)
	}
	return l
}

// Status returns the current status.
func (l *Layout) Status() status.Status { return l.status.Current() }

// Top returns the surface's offset in rows.
func (l *Layout) Top() int { return l.top }

// Animating reports whether the snap-back animation is running.
func (l *Layout) Animating() bool { return l.animationStarted }

// Panel returns the reveal panel.
func (l *Layout) Panel() *reveal.Panel { return l.panel }

// Tracker returns the drag tracker.
func (l *Layout) Tracker() *gesture.Tracker { return l.tracker }

// Target returns the dragged surface, or nil before one is added.
func (l *Layout) Target() ui.View {
	l.ensureTarget()
	return l.target
}

// LayoutPasses returns how many times the layout has been re-measured.
func (l *Layout) LayoutPasses() int { return l.layoutPasses }

// SetOrigin records where the layout is drawn on screen so that mouse
// coordinates can be made relative to it.
func (l *Layout) SetOrigin(x, y int) {
	l.originX, l.originY = x, y
	l.tracker.SetOrigin(x+l.pad.left, y+l.pad.top)
}

// SetOnItemSelected registers the selection listener, replacing any other.
func (l *Layout) SetOnItemSelected(fn func(index int)) { l.onItemSelected = fn }

// AddOnExpandListener registers lis for expand progress.
func (l *Layout) AddOnExpandListener(lis ExpandListener) { l.listeners.Add(lis) }

// RemoveOnExpandListener removes the first registration of lis.
func (l *Layout) RemoveOnExpandListener(lis ExpandListener) bool { return l.listeners.Remove(lis) }

// RemoveAllOnExpandListeners removes every expand listener, the panel's
// included.
func (l *Layout) RemoveAllOnExpandListeners() { l.listeners.Clear() }

// NotifyOnExpandListeners clamps fraction to [0, 1] and passes it to every
// registered listener in order.
func (l *Layout) NotifyOnExpandListeners(fraction float64, fromCancel bool) {
	fraction = math.Max(0, math.Min(1, fraction))
	l.listeners.Notify(fraction, fromCancel)
}

// AddChild attaches v. Views that do not claim pointer events are wrapped
// in a TouchWrapper. The first child other than the panel becomes the
// dragged surface.
func (l *Layout) AddChild(v ui.View) {
	if v == nil {
		return
	}
	if !claimsPointer(v) {
		v = Wrap(v)
	}
	l.children = append(l.children, v)
	if l.target == nil && l.ensureTarget() && l.width > 0 {
		l.measure()
	}
}

func claimsPointer(v ui.View) bool {
	c, ok := v.(ui.PointerClaimer)
	return ok && c.ClaimsPointer()
}

// Complete ends the loading state entered after a selection. It does
// nothing unless the layout is loading.
func (l *Layout) Complete() tea.Cmd {
	if l.status.IsLoading() {
		l.status.ToRecovering()
		l.schedule(l.panel.SetLoading(false))
		if !l.animationStarted {
			l.launchRecoil()
		}
		l.tracker.EndDrag()
	}
	return l.flush()
}

// InterceptMouse reports whether the layout takes over the pointer stream
// starting with msg instead of leaving it to the surface.
func (l *Layout) InterceptMouse(msg tea.MouseMsg) bool {
	if msg.Action == tea.MouseActionRelease {
		// Close the tracker's session even when the surface kept the stream.
		l.tracker.FeedIntercept(msg)
		return false
	}
	if l.animationStarted {
		return false
	}
	if l.canChildDragDown(l.tracker.EventToPoint(msg)) {
		return false
	}
	return l.tracker.FeedIntercept(msg)
}

// DispatchMouse feeds msg to the tracker and reports whether it was used.
func (l *Layout) DispatchMouse(msg tea.MouseMsg) bool {
	return l.tracker.FeedTouch(msg)
}

// Init implements ui.View.
func (l *Layout) Init() tea.Cmd {
	cmds := []tea.Cmd{l.panel.Init()}
	if l.ensureTarget() {
		cmds = append(cmds, l.target.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements ui.View.
func (l *Layout) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width, l.height = max(msg.Width, 0), max(msg.Height, 0)
		l.measure()
		return l, l.flush()

	case tea.MouseMsg:
		l.handleMouse(msg)
		return l, l.flush()

	case tea.BlurMsg:
		l.owning = false
		l.tracker.Cancel()
		return l, l.flush()

	case CompleteMsg:
		return l, l.Complete()

	case anim.FrameMsg:
		if l.recoil != nil && msg.ID == l.recoil.ID() {
			l.schedule(l.recoil.Update(msg))
		} else {
			_, cmd := l.panel.Update(msg)
			l.schedule(cmd)
		}
		return l, l.flush()
	}

	_, cmd := l.panel.Update(msg)
	l.schedule(cmd)
	if l.ensureTarget() {
		v, cmd := l.target.Update(msg)
		l.setTarget(v)
		l.schedule(cmd)
	}
	return l, l.flush()
}

func (l *Layout) handleMouse(msg tea.MouseMsg) {
	if !l.ensureTarget() {
		return
	}
	if l.owning {
		l.DispatchMouse(msg)
		if msg.Action == tea.MouseActionRelease {
			l.owning = false
		}
		return
	}
	if l.InterceptMouse(msg) {
		l.owning = true
		l.DispatchMouse(msg)
		return
	}

	p := l.tracker.EventToPoint(msg)
	if l.overSurface(p) {
		v, cmd := l.target.Update(l.toSurface(msg, p))
		l.setTarget(v)
		l.schedule(cmd)
		return
	}
	// Nothing underneath claimed it, so the tracker gets the stream.
	if !l.animationStarted && l.DispatchMouse(msg) && msg.Action == tea.MouseActionPress {
		l.owning = true
	}
}

func (l *Layout) overSurface(p gesture.Point) bool {
	if !l.ensureTarget() {
		return false
	}
	w, h := l.innerSize()
	return p.X >= 0 && p.X < w && p.Y >= l.top && p.Y < h
}

func (l *Layout) toSurface(msg tea.MouseMsg, p gesture.Point) tea.MouseMsg {
	msg.X = p.X
	msg.Y = p.Y - l.top
	return msg
}

// canChildDragDown reports whether the surface would scroll for a downward
// drag starting at p.
func (l *Layout) canChildDragDown(p gesture.Point) bool {
	if !l.ensureTarget() {
		return false
	}
	if w, ok := l.target.(*TouchWrapper); ok {
		return w.CanChildDragDown(gesture.Point{X: p.X, Y: p.Y - l.top})
	}
	if s, ok := l.target.(ui.Scroller); ok {
		return s.CanScrollUp()
	}
	return false
}

// OnActionDown implements gesture.Callback.
func (l *Layout) OnActionDown() {}

// OnBeginDragging implements gesture.Callback. A drag begun while loading
// still moves to Changed, so its release can commit a new selection.
func (l *Layout) OnBeginDragging() {
	if !l.status.IsLoading() {
		l.panel.OnActionDown()
	}
	l.status.ToChanged()
}

// OnActionMove implements gesture.Callback.
func (l *Layout) OnActionMove(expanded bool, t *gesture.Tracker) {
	if !l.status.IsLoading() {
		l.schedule(l.panel.OnActionMove(expanded, t))
	}
	if !t.IsBeginDragging() {
		return
	}
	top := l.top
	if !expanded && !l.status.IsLoading() {
		// Live drag updates are reported as cancel-style until release
		// decides the outcome.
		l.NotifyOnExpandListeners(t.ExpandProgress(top), true)
	}
	l.offsetChildren(t.TargetTopOffset(top))
}

// OnActionUp implements gesture.Callback.
func (l *Layout) OnActionUp(expanded bool) {
	if l.status.IsLoading() {
		return
	}
	switch {
	case expanded:
		l.status.ToBusy()
	case l.status.IsBusying():
		// A release cannot undo a commit.
	case l.animationStarted:
	default:
		l.launchRecoil()
		l.tracker.EndDrag()
	}
	l.schedule(l.panel.OnActionUpOrCancel(expanded))
}

// OnActionCancel implements gesture.Callback.
func (l *Layout) OnActionCancel(expanded bool) {
	if !l.status.IsLoading() {
		l.schedule(l.panel.OnActionUpOrCancel(expanded))
	}
}

// launchRecoil animates the surface back to its resting row.
func (l *Layout) launchRecoil() {
	if !l.ensureTarget() {
		return
	}
	fromCancel := !l.status.IsRecovering()
	from := l.top
	l.observer.OnRecoilStart(from, fromCancel)

	l.recoil = anim.New(l.collapseDuration, anim.Decelerate, func(f float64) {
		step := int(math.Round(float64(from) * (1 - f)))
		top := l.top
		l.NotifyOnExpandListeners(l.tracker.ExpandProgress(top), fromCancel)
		l.offsetChildren(l.tracker.TargetTopOffsetTo(top, step))
	}, func() {
		l.animationStarted = false
		l.status.ToIdle()
		l.observer.OnRecoilEnd()
	})
	l.animationStarted = true
	l.schedule(l.recoil.Start(l.now()))
}

func (l *Layout) onRippleFinished(index int) {
	l.status.ToLoading()
	l.schedule(l.panel.SetLoading(true))
	l.observer.OnItemSelected(index)
	if l.onItemSelected != nil {
		l.onItemSelected(index)
	}
	l.schedule(func() tea.Msg { return ItemSelectedMsg{Index: index} })
}

// offsetChildren moves the surface and the panel by delta rows.
func (l *Layout) offsetChildren(delta int) {
	if delta == 0 {
		return
	}
	l.top += delta
	l.requestLayout()
}

func (l *Layout) requestLayout() {
	l.layoutPasses++
	w, _ := l.innerSize()
	l.panel.SetSize(w, l.top)
}

// measure sizes the surface to the inner area and the panel to the rows
// above the surface.
func (l *Layout) measure() {
	if !l.ensureTarget() {
		return
	}
	w, h := l.innerSize()
	v, cmd := l.target.Update(tea.WindowSizeMsg{Width: w, Height: h})
	l.setTarget(v)
	l.schedule(cmd)
	l.requestLayout()
}

func (l *Layout) innerSize() (int, int) {
	w := max(l.width-l.pad.left-l.pad.right, 0)
	h := max(l.height-l.pad.top-l.pad.bottom, 0)
	return w, h
}

func (l *Layout) ensureTarget() bool {
	if l.target != nil {
		return true
	}
	for i, c := range l.children {
		if p, ok := c.(*reveal.Panel); ok && p == l.panel {
			continue
		}
		l.target, l.targetIndex = c, i
		return true
	}
	return false
}

func (l *Layout) setTarget(v ui.View) {
	if v == nil || l.targetIndex < 0 {
		return
	}
	l.target = v
	l.children[l.targetIndex] = v
}

func (l *Layout) schedule(cmd tea.Cmd) {
	if cmd != nil {
		l.pending = append(l.pending, cmd)
	}
}

func (l *Layout) flush() tea.Cmd {
	if len(l.pending) == 0 {
		return nil
	}
	cmds := l.pending
	l.pending = nil
	return tea.Batch(cmds...)
}

// View implements ui.View. The panel fills the rows above the surface and
// the result is clipped to the layout's height.
func (l *Layout) View() string {
	if !l.ensureTarget() || l.width <= 0 || l.height <= 0 {
		return ""
	}
	_, h := l.innerSize()

	var rows []string
	if l.top > 0 {
		if pv := l.panel.View(); pv != "" {
			rows = append(rows, strings.Split(pv, "\n")...)
		}
	}
	rows = append(rows, strings.Split(l.target.View(), "\n")...)
	if len(rows) > h {
		rows = rows[:h]
	}
	for len(rows) < h {
		rows = append(rows, "")
	}

	indent := strings.Repeat(" ", l.pad.left)
	lines := make([]string, 0, l.height)
	for i := 0; i < l.pad.top; i++ {
		lines = append(lines, "")
	}
	for _, r := range rows {
		lines = append(lines, indent+r)
	}
	for i := 0; i < l.pad.bottom; i++ {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
