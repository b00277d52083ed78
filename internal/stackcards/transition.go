package stackcards

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/stackcards/pkg/mathx"
)

// The spring is critically damped so the expanding card never overshoots.
const (
	transitionFPS       = 60
	transitionFrequency = 7.0
	transitionDamping   = 1.0
	settleEpsilon       = 0.01
)

// transition animates the hand-over between the previously active card and
// the newly active one. progress runs from 0 to 1.
type transition struct {
	spring   harmonica.Spring
	enabled  bool
	running  bool
	from     int
	progress float64
	velocity float64
	tag      int
}

func newTransition(enabled bool) transition {
	return transition{
		spring:   harmonica.NewSpring(harmonica.FPS(transitionFPS), transitionFrequency, transitionDamping),
		enabled:  enabled,
		from:     -1,
		progress: 1,
	}
}

// start begins a hand-over from the card at index from. It returns the first
// frame command, or nil when transitions are disabled.
func (t *transition) start(id, from int) tea.Cmd {
	t.tag++
	if !t.enabled {
		t.finish()
		return nil
	}
	t.running = true
	t.from = from
	t.progress = 0
	t.velocity = 0
	return t.tick(id)
}

// advance steps the spring for a frame and reports whether another frame is
// needed.
func (t *transition) advance(id int, msg frameMsg) tea.Cmd {
	if !t.running || msg.id != id || msg.tag != t.tag {
		return nil
	}

	t.progress, t.velocity = t.spring.Update(t.progress, t.velocity, 1)
	if math.Abs(1-t.progress) < settleEpsilon && math.Abs(t.velocity) < settleEpsilon {
		t.finish()
		return nil
	}
	return t.tick(id)
}

func (t *transition) finish() {
	t.running = false
	t.from = -1
	t.progress = 1
	t.velocity = 0
}

// stop invalidates any frames in flight.
func (t *transition) stop() {
	t.tag++
	t.finish()
}

func (t *transition) tick(id int) tea.Cmd {
	tag := t.tag
	return tea.Tick(time.Second/transitionFPS, func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}

// amount returns the clamped progress.
func (t transition) amount() float64 {
	return mathx.Clamp(t.progress, 0, 1)
}

// entered reports whether the incoming card's content should be visible.
func (t transition) entered() bool {
	return !t.running || t.amount() >= 0.5
}
