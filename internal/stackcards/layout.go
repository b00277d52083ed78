package stackcards

import (
	"math"
)

// extent is a card's span along the stacking axis, relative to the widget.
type extent struct {
	start int
	size  int
}

// mainSizes returns each card's size along the stacking axis. The newly
// active card grows while the previous one shrinks, so the total stays fixed
// throughout a transition.
func mainSizes(count, active int, size Size, tr transition) []int {
	if count <= 0 {
		return nil
	}

	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = size.CollapsedSize
	}

	delta := size.ExpandedSize - size.CollapsedSize
	if !tr.running || tr.from < 0 || tr.from >= count || tr.from == active {
		sizes[active] = size.ExpandedSize
		return sizes
	}

	grown := int(math.Round(float64(delta) * tr.amount()))
	sizes[active] = size.CollapsedSize + grown
	sizes[tr.from] = size.CollapsedSize + delta - grown
	return sizes
}

func extents(sizes []int, gap int) []extent {
	out := make([]extent, len(sizes))
	pos := 0
	for i, s := range sizes {
		out[i] = extent{start: pos, size: s}
		pos += s + gap
	}
	return out
}

// span is the total main-axis length of the laid-out cards.
func span(ex []extent) int {
	if len(ex) == 0 {
		return 0
	}
	last := ex[len(ex)-1]
	return last.start + last.size
}

// hitTest maps a position along the stacking axis to a card index, or -1
// when it falls in a gap or outside every card.
func hitTest(ex []extent, pos int) int {
	for i, e := range ex {
		if pos >= e.start && pos < e.start+e.size {
			return i
		}
	}
	return -1
}
