// Package app is the demo program: a scrollable document inside a swipe
// layout. Pulling the document down reveals a row of actions; selecting one
// runs a pretend job and then completes the layout.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pullmenu/internal/gesture"
	"pullmenu/internal/progress"
	"pullmenu/internal/swipe"
	"pullmenu/internal/ui"
)

// DefaultIcons are the demo's actions, shown left to right.
var DefaultIcons = []string{"+", "↻", "✎", "✕"}

// actionNames label DefaultIcons in the footer.
var actionNames = map[string]string{
	"+": "add",
	"↻": "refresh",
	"✎": "edit",
	"✕": "close",
}

// footerHeight is the number of rows below the layout.
const footerHeight = 2

// jobDoneMsg reports that the job started for a selection has finished.
type jobDoneMsg struct {
	id int
}

// Options configure the demo.
type Options struct {
	// Theme overrides the built-in look; its set fields win.
	Theme   *swipe.Config
	Gesture gesture.Config
	// Latency is how long the pretend job takes.
	Latency  time.Duration
	Observer swipe.Observer
	// Document is the scrollable content; empty uses a built-in text.
	Document string
	// RunJob starts the work for a selection and returns a command that
	// eventually yields done. Defaults to waiting Latency.
	RunJob func(index int, done tea.Msg) tea.Cmd
}

// AppModel is the root model. It hosts the swipe layout above a footer.
type AppModel struct {
	Layout   *swipe.Layout
	Surface  *ui.ScrollView
	Progress *progress.Recorder
	Keys     KeyMap
	Help     help.Model
	Bar      progressbar.Model

	runJob   func(index int, done tea.Msg) tea.Cmd
	icons    []string
	selected int
	job      int
	width    int
	height   int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	m := &AppModel{
		Progress: &progress.Recorder{Limit: 1},
		Keys:     DefaultKeyMap(),
		Help:     help.New(),
		Bar:      progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithoutPercentage()),
		selected: -1,
	}

	latency := opts.Latency
	m.runJob = opts.RunJob
	if m.runJob == nil {
		m.runJob = func(_ int, done tea.Msg) tea.Cmd {
			return tea.Tick(latency, func(time.Time) tea.Msg { return done })
		}
	}

	builtin := swipe.NewConfig().WithBackground("·")
	for _, icon := range DefaultIcons {
		builtin = builtin.AddIcon(icon)
	}
	theme := swipe.NewConfig()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	cfg := theme.Merge(builtin)
	m.icons = cfg.Icons

	layoutOpts := []swipe.Option{swipe.WithConfig(cfg)}
	if opts.Gesture != (gesture.Config{}) {
		layoutOpts = append(layoutOpts, swipe.WithTrackerConfig(opts.Gesture))
	}
	if opts.Observer != nil {
		layoutOpts = append(layoutOpts, swipe.WithObserver(opts.Observer))
	}
	m.Layout = swipe.New(layoutOpts...)
	m.Layout.AddOnExpandListener(m.Progress)

	doc := opts.Document
	if doc == "" {
		doc = defaultDocument
	}
	m.Surface = ui.NewScrollView(doc)
	m.Layout.AddChild(m.Surface)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Selected returns the last confirmed selection, or -1.
func (m *AppModel) Selected() int { return m.selected }

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Layout.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Help.Width = msg.Width
		a.Bar.Width = max(msg.Width/3, 10)
		_, cmd := a.Layout.Update(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-footerHeight, 0)})
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.Keys.Complete):
			return a, a.Layout.Complete()
		}

	case swipe.ItemSelectedMsg:
		a.selected = msg.Index
		a.job++
		return a, a.runJob(msg.Index, jobDoneMsg{id: a.job})

	case jobDoneMsg:
		if msg.id != a.job {
			return a, nil
		}
		return a, a.Layout.Complete()
	}

	_, cmd := a.Layout.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.Layout.View(), a.footer())
}

func (a *appModelAdapter) footer() string {
	fraction := 0.0
	if e, ok := a.Progress.Last(); ok {
		fraction = e.Fraction
	}
	line := strings.Join([]string{
		ui.Styles.Status.Render(a.Layout.Status().String()),
		ui.Styles.Muted.Render("last: ") + ui.Styles.Selected.Render(a.selectionLabel()),
		a.Bar.ViewAs(fraction),
	}, "  ")
	return ui.Styles.Footer.Render(line) + "\n" + ui.Styles.Footer.Render(a.Help.View(a.Keys))
}

func (a *appModelAdapter) selectionLabel() string {
	if a.selected < 0 || a.selected >= len(a.icons) {
		return "none"
	}
	icon := a.icons[a.selected]
	if name, ok := actionNames[icon]; ok {
		return fmt.Sprintf("%s %s", icon, name)
	}
	return icon
}

const defaultDocument = `Pull this page down with the mouse to reveal the action row.

Keep dragging past the threshold and the row comes fully into view.
Move sideways to pick an action, then release to run it.
Release early and the page springs back.

While an action runs the row shows a spinner. Press c to finish it
early, or wait for it to complete on its own.

Scroll with the arrow keys or the mouse wheel. The row only appears
when the page is scrolled all the way to the top.

` + loremTail

const loremTail = `Lorem ipsum dolor sit amet, consectetur adipiscing elit.
Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.
Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.
Duis aute irure dolor in reprehenderit in voluptate velit esse.
Excepteur sint occaecat cupidatat non proident, sunt in culpa.
Curabitur pretium tincidunt lacus, nulla gravida orci a odio.
Nullam varius, turpis et commodo pharetra, est eros bibendum elit.
Integer in mauris eu nibh euismod gravida.
Duis ac tellus et risus vulputate vehicula.
Donec lobortis risus a elit, etiam tempor.
Ut ullamcorper, ligula eu tempor congue, eros est euismod turpis.
Id tincidunt sapien risus a quam, maecenas fermentum consequat mi.
Donec fermentum, pellentesque malesuada nulla a mi.
Duis sapien sem, aliquet nec, commodo eget, consequat quis, neque.
Aliquam faucibus, elit ut dictum aliquet, felis nisl adipiscing sapien.
Sed malesuada diam lacus, nec tempus neque vel purus.`
