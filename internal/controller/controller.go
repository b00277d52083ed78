// Package controller owns the active-index state of a stacked cards widget.
//
// Every mutation is normalized through SetActive, which clamps into
// [0, count-1]. Wheel input arms a cooldown during which hover input is
// ignored; focus and programmatic changes are never suppressed.
package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stackcards/internal/debounce"
	"github.com/alexisbeaulieu97/stackcards/pkg/mathx"
)

// Source records which kind of input produced a change.
type Source int

const (
	SourceProgrammatic Source = iota
	SourceHover
	SourceFocus
	SourceWheel
	SourceResize
)

func (s Source) String() string {
	switch s {
	case SourceHover:
		return "hover"
	case SourceFocus:
		return "focus"
	case SourceWheel:
		return "wheel"
	case SourceResize:
		return "resize"
	default:
		return "programmatic"
	}
}

// Change describes an active-index transition that actually moved the index.
type Change struct {
	Previous int
	Current  int
	Source   Source
}

// Options configures a Controller.
type Options struct {
	WheelEnabled bool
	Cooldown     time.Duration
}

// Controller holds the active index and the hover lock.
type Controller struct {
	count    int
	active   int
	wheel    bool
	cooldown debounce.Cooldown
	closed   bool
}

// New returns a controller for count cards with the first card active.
func New(count int, opts Options) Controller {
	if count < 0 {
		count = 0
	}
	return Controller{
		count:    count,
		wheel:    opts.WheelEnabled,
		cooldown: debounce.New(opts.Cooldown),
	}
}

// Active returns the active index. It is 0 for an empty deck.
func (c Controller) Active() int {
	return c.active
}

// Count returns the number of cards under control.
func (c Controller) Count() int {
	return c.count
}

// Locked reports whether hover input is currently suppressed.
func (c Controller) Locked() bool {
	return c.cooldown.Armed()
}

// WheelEnabled reports whether wheel input is accepted.
func (c Controller) WheelEnabled() bool {
	return c.wheel
}

// CooldownID identifies the controller's cooldown messages.
func (c Controller) CooldownID() int {
	return c.cooldown.ID()
}

// SetActive moves to the clamped requested index. The returned bool is false
// when nothing changed, including when the clamp lands on the current index.
func (c *Controller) SetActive(requested int) (Change, bool) {
	return c.set(requested, SourceProgrammatic)
}

// Hover handles pointer hover over card index. It is a no-op while locked.
func (c *Controller) Hover(index int) (Change, bool) {
	if c.Locked() {
		return Change{}, false
	}
	return c.set(index, SourceHover)
}

// Focus handles keyboard focus landing on card index.
func (c *Controller) Focus(index int) (Change, bool) {
	return c.set(index, SourceFocus)
}

// Wheel applies one wheel tick. deltaSign follows the wheel-delta convention
// (positive scrolls up) and is reduced to its sign; the index moves by its
// negation. Every accepted tick re-arms the cooldown and returns the command
// that will deliver its expiry. When wheel input is disabled the event is
// ignored entirely and the returned command is nil.
func (c *Controller) Wheel(deltaSign int) (Change, bool, tea.Cmd) {
	if !c.wheel || c.closed || c.count == 0 {
		return Change{}, false, nil
	}

	change, changed := c.set(c.active-mathx.Sign(deltaSign), SourceWheel)
	return change, changed, c.cooldown.Arm()
}

// Expire handles a cooldown expiry and reports whether it released the lock.
func (c *Controller) Expire(msg debounce.ExpiredMsg) bool {
	if c.closed {
		return false
	}
	return c.cooldown.Expire(msg)
}

// Resize adopts a new card count, re-clamping the active index rather than
// resetting it.
func (c *Controller) Resize(count int) (Change, bool) {
	if count < 0 {
		count = 0
	}
	c.count = count
	if count == 0 {
		prev := c.active
		c.active = 0
		if prev == 0 {
			return Change{}, false
		}
		return Change{Previous: prev, Current: 0, Source: SourceResize}, true
	}
	return c.set(c.active, SourceResize)
}

// Close releases the cooldown. A closed controller ignores all further input.
func (c *Controller) Close() {
	c.cooldown.Stop()
	c.closed = true
}

// Closed reports whether Close has been called.
func (c Controller) Closed() bool {
	return c.closed
}

func (c *Controller) set(requested int, source Source) (Change, bool) {
	if c.closed || c.count == 0 {
		return Change{}, false
	}

	next := mathx.Clamp(requested, 0, c.count-1)
	if next == c.active {
		return Change{}, false
	}

	change := Change{Previous: c.active, Current: next, Source: source}
	c.active = next
	return change, true
}
