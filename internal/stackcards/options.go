package stackcards

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/stackcards/internal/brightness"
	"github.com/alexisbeaulieu97/stackcards/internal/debounce"
	"github.com/alexisbeaulieu97/stackcards/internal/logger"
	stackerrors "github.com/alexisbeaulieu97/stackcards/pkg/errors"
)

// Orientation selects the stacking axis.
type Orientation int

const (
	// OrientationHorizontal lays cards side by side.
	OrientationHorizontal Orientation = iota
	// OrientationVertical stacks cards top to bottom.
	OrientationVertical
	// OrientationAuto picks vertical below AutoBreakpoint columns.
	OrientationAuto
)

// AutoBreakpoint is the viewport width below which auto orientation stacks
// vertically.
const AutoBreakpoint = 100

func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "vertical"
	case OrientationAuto:
		return "auto"
	default:
		return "horizontal"
	}
}

// ParseOrientation accepts "horizontal", "vertical", "auto" and the boolean
// spellings "true" (vertical) and "false" (horizontal).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "false":
		return OrientationHorizontal, nil
	case "vertical", "true":
		return OrientationVertical, nil
	case "auto", "":
		return OrientationAuto, nil
	default:
		return OrientationAuto, fmt.Errorf("unknown orientation %q", s)
	}
}

// Resolve returns a concrete orientation for a viewport width. A zero width
// means the viewport is not known yet and resolves auto to horizontal.
func (o Orientation) Resolve(viewportWidth int) Orientation {
	if o != OrientationAuto {
		return o
	}
	if viewportWidth > 0 && viewportWidth < AutoBreakpoint {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// Size holds layout dimensions in terminal cells. Zero fields take the
// defaults for the resolved orientation. Width is the cross-axis extent of a
// vertical stack and Height the cross-axis extent of a horizontal one;
// ExpandedSize and CollapsedSize run along the stacking axis.
type Size struct {
	Width         int
	Height        int
	ExpandedSize  int
	CollapsedSize int
}

var (
	horizontalDefaults = Size{Width: 0, Height: 12, ExpandedSize: 36, CollapsedSize: 5}
	verticalDefaults   = Size{Width: 48, Height: 0, ExpandedSize: 9, CollapsedSize: 3}
)

func (s Size) withDefaults(o Orientation) Size {
	def := horizontalDefaults
	if o == OrientationVertical {
		def = verticalDefaults
	}
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.ExpandedSize <= 0 {
		s.ExpandedSize = def.ExpandedSize
	}
	if s.CollapsedSize <= 0 {
		s.CollapsedSize = def.CollapsedSize
	}
	if s.CollapsedSize > s.ExpandedSize {
		s.CollapsedSize = s.ExpandedSize
	}
	return s
}

// Origin is the screen position of the widget's top-left cell, used to map
// mouse coordinates onto cards.
type Origin struct {
	X int
	Y int
}

// Options configures a Model. Colours are passed to lipgloss uninterpreted;
// hex colours are additionally blended to express intensity.
type Options struct {
	CardColor                   string
	OverlayColor                string
	Orientation                 Orientation
	Brightness                  brightness.Params
	HideShortTitleWhenCollapsed bool
	EnableWheelScroll           bool
	Size                        Size
	Gap                         int
	Origin                      Origin
	Cooldown                    time.Duration
	DisableTransitions          bool
	KeyMap                      KeyMap
	Logger                      *logger.Logger
}

// DefaultOptions returns the canonical widget configuration.
func DefaultOptions() Options {
	return Options{
		CardColor:         "#1e293b",
		OverlayColor:      "#000000",
		Orientation:       OrientationAuto,
		Brightness:        brightness.Params{Min: 0, Max: 0.8},
		EnableWheelScroll: true,
		Cooldown:          debounce.DefaultDuration,
		KeyMap:            DefaultKeyMap(),
	}
}

// Validate rejects configurations the widget cannot render.
func (o Options) Validate() error {
	b := o.Brightness
	if b.Steps < 0 {
		return stackerrors.NewValidationError("gradient_steps",
			fmt.Sprintf("got %d", b.Steps), stackerrors.ErrInvalidGradientSteps)
	}
	if !(b.Min >= 0 && b.Min <= b.Max && b.Max <= 1) {
		return stackerrors.NewValidationError("brightness",
			fmt.Sprintf("min %v, max %v", b.Min, b.Max), stackerrors.ErrInvalidBrightness)
	}
	if o.Gap < 0 {
		return stackerrors.NewValidationError("gap", "must not be negative", nil)
	}
	if o.Size.Width < 0 || o.Size.Height < 0 || o.Size.ExpandedSize < 0 || o.Size.CollapsedSize < 0 {
		return stackerrors.NewValidationError("size", "dimensions must not be negative", nil)
	}
	return nil
}
