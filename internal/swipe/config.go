package swipe

import "time"

// Unset marks an integer Config field that leaves the layout's value alone.
const Unset = -1

// Config carries optional overrides for a Layout. String fields are unset
// when empty, Icons and OnItemSelected when nil, integers when Unset.
//
// Start from NewConfig. The zero value is not empty: its integer fields are
// 0, so applying it sets radius and gap to 0 and every duration to 0 ms.
//
// Builder methods return a modified copy, so a Config can be shared.
type Config struct {
	Icons             []string
	BackgroundPattern string
	BackgroundColor   string
	CircleColor       string
	Radius            int
	Gap               int

	// Durations in milliseconds.
	CollapseDuration int
	RippleDuration   int
	GummyDuration    int

	OnItemSelected func(index int)
}

// NewConfig returns a Config with every field unset.
func NewConfig() Config {
	return Config{
		Radius:           Unset,
		Gap:              Unset,
		CollapseDuration: Unset,
		RippleDuration:   Unset,
		GummyDuration:    Unset,
	}
}

// AddIcon appends an icon label.
func (c Config) AddIcon(icon string) Config {
	icons := make([]string, len(c.Icons), len(c.Icons)+1)
	copy(icons, c.Icons)
	c.Icons = append(icons, icon)
	return c
}

// WithBackground tiles the panel with pattern.
func (c Config) WithBackground(pattern string) Config {
	c.BackgroundPattern = pattern
	return c
}

// WithBackgroundColor fills the panel with color.
func (c Config) WithBackgroundColor(color string) Config {
	c.BackgroundColor = color
	return c
}

// WithCircleColor sets the indicator and ripple colour.
func (c Config) WithCircleColor(color string) Config {
	c.CircleColor = color
	return c
}

// WithRadius sets the half-width of an icon slot, in columns.
func (c Config) WithRadius(radius int) Config {
	c.Radius = radius
	return c
}

// WithGap sets the columns between icon slots.
func (c Config) WithGap(gap int) Config {
	c.Gap = gap
	return c
}

// WithCollapseDuration sets the snap-back length in milliseconds.
func (c Config) WithCollapseDuration(ms int) Config {
	c.CollapseDuration = ms
	return c
}

// WithRippleDuration sets the commit ripple length in milliseconds.
func (c Config) WithRippleDuration(ms int) Config {
	c.RippleDuration = ms
	return c
}

// WithGummyDuration sets the indicator slide length in milliseconds.
func (c Config) WithGummyDuration(ms int) Config {
	c.GummyDuration = ms
	return c
}

// ListenItemSelected sets the selection listener.
func (c Config) ListenItemSelected(fn func(index int)) Config {
	c.OnItemSelected = fn
	return c
}

// Merge fills the fields c leaves unset from other. Fields already set in c
// are kept.
func (c Config) Merge(other Config) Config {
	if c.Icons == nil && other.Icons != nil {
		c.Icons = append([]string(nil), other.Icons...)
	}
	if c.BackgroundPattern == "" {
		c.BackgroundPattern = other.BackgroundPattern
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = other.BackgroundColor
	}
	if c.CircleColor == "" {
		c.CircleColor = other.CircleColor
	}
	if c.Radius == Unset {
		c.Radius = other.Radius
	}
	if c.Gap == Unset {
		c.Gap = other.Gap
	}
	if c.CollapseDuration == Unset {
		c.CollapseDuration = other.CollapseDuration
	}
	if c.RippleDuration == Unset {
		c.RippleDuration = other.RippleDuration
	}
	if c.GummyDuration == Unset {
		c.GummyDuration = other.GummyDuration
	}
	if c.OnItemSelected == nil {
		c.OnItemSelected = other.OnItemSelected
	}
	return c
}

// Apply pushes the set fields of c onto l.
func Apply(l *Layout, c Config) {
	p := l.panel
	if c.Icons != nil {
		p.SetIcons(c.Icons)
	}
	if c.BackgroundPattern != "" {
		p.SetBackgroundPattern(c.BackgroundPattern)
	}
	if c.BackgroundColor != "" {
		p.SetBackgroundColor(c.BackgroundColor)
	}
	if c.CircleColor != "" {
		p.SetCircleColor(c.CircleColor)
	}
	if c.Radius != Unset {
		p.SetRadius(c.Radius)
	}
	if c.Gap != Unset {
		p.SetGap(c.Gap)
	}
	if c.CollapseDuration != Unset {
		l.collapseDuration = millis(c.CollapseDuration)
	}
	if c.RippleDuration != Unset {
		p.SetRippleDuration(millis(c.RippleDuration))
	}
	if c.GummyDuration != Unset {
		p.SetGummyDuration(millis(c.GummyDuration))
	}
	if c.OnItemSelected != nil {
		l.onItemSelected = c.OnItemSelected
	}
	l.measure()
}

func millis(ms int) time.Duration {
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}
