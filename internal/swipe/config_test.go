package swipe

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_NewConfigIsUnset(t *testing.T) {
	c := NewConfig()
	assert.Nil(t, c.Icons)
	assert.Equal(t, Unset, c.Radius)
	assert.Equal(t, Unset, c.Gap)
	assert.Equal(t, Unset, c.CollapseDuration)
	assert.Equal(t, Unset, c.RippleDuration)
	assert.Equal(t, Unset, c.GummyDuration)
	assert.Nil(t, c.OnItemSelected)
}

func TestConfig_AddIconDoesNotAlias(t *testing.T) {
	base := NewConfig().AddIcon("a")
	x := base.AddIcon("x")
	y := base.AddIcon("y")

	assert.Equal(t, []string{"a"}, base.Icons)
	assert.Equal(t, []string{"a", "x"}, x.Icons)
	assert.Equal(t, []string{"a", "y"}, y.Icons)
}

func TestConfig_MergeKeepsSetFields(t *testing.T) {
	theme := NewConfig().WithRadius(3).WithBackgroundColor("57")
	called := 0
	builder := NewConfig().
		WithRadius(9).
		WithGap(4).
		AddIcon("+").
		WithCircleColor("205").
		ListenItemSelected(func(int) { called++ })

	got := theme.Merge(builder)
	assert.Equal(t, 3, got.Radius, "theme wins")
	assert.Equal(t, 4, got.Gap)
	assert.Equal(t, "57", got.BackgroundColor)
	assert.Equal(t, "205", got.CircleColor)
	assert.Equal(t, []string{"+"}, got.Icons)
	require.NotNil(t, got.OnItemSelected)
	got.OnItemSelected(0)
	assert.Equal(t, 1, called)
}

func TestApply_SetsPanelAndLayout(t *testing.T) {
	var picked []int
	l := New()
	Apply(l, NewConfig().
		AddIcon("a").
		AddIcon("b").
		WithBackground("·").
		WithGap(0).
		WithCollapseDuration(0).
		ListenItemSelected(func(i int) { picked = append(picked, i) }))

	assert.Equal(t, []string{"a", "b"}, l.Panel().Icons())
	assert.Equal(t, time.Duration(0), l.collapseDuration)

	l.onRippleFinished(1)
	assert.Equal(t, []int{1}, picked)

	// An unset listener keeps the registered one.
	Apply(l, NewConfig())
	l.onRippleFinished(0)
	assert.Equal(t, []int{1, 0}, picked)
}

func TestApply_ZeroConfigIsNotUnset(t *testing.T) {
	l := New()
	Apply(l, NewConfig())
	assert.Equal(t, DefaultCollapseDuration, l.collapseDuration)

	Apply(l, Config{})
	assert.Equal(t, time.Duration(0), l.collapseDuration, "zero value sets durations to 0 ms")
}

func TestApply_GapIsIndependentOfRadius(t *testing.T) {
	l := New()
	l.AddChild(&stubSurface{})
	Apply(l, NewConfig().AddIcon("a").AddIcon("b").WithGap(5))

	// Default radius 1: icons sit one slot (3 cells) plus the gap apart.
	p := l.Panel()
	p.SetSize(40, 3)
	require.Equal(t, []string{"a", "b"}, p.Icons())
	row := strings.Split(p.View(), "\n")[1]
	assert.Equal(t, 8, strings.Index(row, "b")-strings.Index(row, "a"))
}

func TestMillis(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, millis(250))
	assert.Equal(t, time.Duration(0), millis(-5))
}
