// Package debounce provides a restartable single-shot cooldown for Bubble Tea
// components.
//
// A Cooldown never runs callbacks on its own goroutine. Arming it returns a
// tea.Cmd that delivers an ExpiredMsg after the configured duration; re-arming
// or stopping bumps an internal tag so earlier deliveries are recognised as
// stale and ignored. Exactly one expiry is honoured per arming sequence, and
// it is the one scheduled by the most recent Arm.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is the cooldown applied after wheel input.
const DefaultDuration = time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ExpiredMsg is delivered when an armed cooldown's timer fires.
type ExpiredMsg struct {
	ID  int
	Tag int
}

// Cooldown is an owned, cancellable timer handle.
type Cooldown struct {
	id       int
	tag      int
	armed    bool
	duration time.Duration
}

// New returns a cooldown with its own identity. Non-positive durations fall
// back to DefaultDuration.
func New(d time.Duration) Cooldown {
	if d <= 0 {
		d = DefaultDuration
	}
	return Cooldown{id: nextID(), duration: d}
}

// ID identifies the cooldown so hosts can route ExpiredMsg values.
func (c Cooldown) ID() int {
	return c.id
}

// Duration returns the configured cooldown length.
func (c Cooldown) Duration() time.Duration {
	return c.duration
}

// Armed reports whether an expiry is pending.
func (c Cooldown) Armed() bool {
	return c.armed
}

// Arm (re)starts the cooldown and invalidates any pending expiry.
func (c *Cooldown) Arm() tea.Cmd {
	c.tag++
	c.armed = true

	id, tag := c.id, c.tag
	return tea.Tick(c.duration, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id, Tag: tag}
	})
}

// Expire consumes msg and reports whether it ended the current cooldown.
// Messages for other cooldowns or from superseded arms are ignored.
func (c *Cooldown) Expire(msg ExpiredMsg) bool {
	if !c.armed || msg.ID != c.id || msg.Tag != c.tag {
		return false
	}
	c.armed = false
	return true
}

// Stop cancels a pending expiry.
func (c *Cooldown) Stop() {
	c.tag++
	c.armed = false
}
