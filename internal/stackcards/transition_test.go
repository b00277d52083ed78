package stackcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumSizes(views []CardView) int {
	total := 0
	for _, v := range views {
		total += v.Size
	}
	return total
}

func TestTransitionHandsOverSize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 4, func(o *Options) { o.DisableTransitions = false })
	total := sumSizes(m.CardViews())

	cmd := m.SetActive(3)
	require.NotNil(t, cmd)
	require.True(t, m.Animating())

	views := m.CardViews()
	assert.False(t, views[3].Expanded, "incoming content waits for the grow")
	assert.True(t, views[0].Expanded, "outgoing content stays during the shrink")
	assert.Equal(t, 36, views[0].Size)
	assert.Equal(t, 5, views[3].Size)

	frames := 0
	for m.Animating() && frames < 600 {
		m, _ = m.Update(frameMsg{id: m.ID(), tag: m.tr.tag})
		assert.Equal(t, total, sumSizes(m.CardViews()))
		frames++
	}

	require.False(t, m.Animating(), "transition settles")
	views = m.CardViews()
	assert.True(t, views[3].Expanded)
	assert.False(t, views[0].Expanded)
	assert.Equal(t, 36, views[3].Size)
	assert.Equal(t, 5, views[0].Size)
}

func TestTransitionIgnoresStaleFrames(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 4, func(o *Options) { o.DisableTransitions = false })
	m.SetActive(1)
	stale := frameMsg{id: m.ID(), tag: m.tr.tag}
	m.SetActive(2)

	m, cmd := m.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, m.tr.progress)

	_, cmd = m.Update(frameMsg{id: m.ID() + 1000, tag: m.tr.tag})
	assert.Nil(t, cmd)
}

func TestTransitionFrameSchedulesNext(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 4, func(o *Options) { o.DisableTransitions = false })
	m.SetActive(1)

	m, cmd := m.Update(frameMsg{id: m.ID(), tag: m.tr.tag})
	require.NotNil(t, cmd)
	assert.Greater(t, m.tr.progress, 0.0)

	next, ok := cmd().(frameMsg)
	require.True(t, ok)
	assert.Equal(t, m.tr.tag, next.tag)
}

func TestDisabledTransitionsApplyImmediately(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 4, nil)
	msgs := drain(t, m.SetActive(2))

	for _, msg := range msgs {
		_, isFrame := msg.(frameMsg)
		assert.False(t, isFrame)
	}
	assert.False(t, m.Animating())
	assert.True(t, m.CardViews()[2].Expanded)
}

func TestLayoutHelpers(t *testing.T) {
	t.Parallel()

	size := Size{Height: 10, ExpandedSize: 20, CollapsedSize: 4}
	idle := newTransition(false)

	sizes := mainSizes(3, 1, size, idle)
	assert.Equal(t, []int{4, 20, 4}, sizes)

	ex := extents(sizes, 1)
	assert.Equal(t, []extent{{0, 4}, {5, 20}, {26, 4}}, ex)
	assert.Equal(t, 30, span(ex))
	assert.Equal(t, 0, hitTest(ex, 3))
	assert.Equal(t, -1, hitTest(ex, 4))
	assert.Equal(t, 1, hitTest(ex, 5))
	assert.Equal(t, 2, hitTest(ex, 29))
	assert.Equal(t, -1, hitTest(ex, 30))

	assert.Nil(t, mainSizes(0, 0, size, idle))
	assert.Equal(t, 0, span(nil))
}

func TestSizeDefaults(t *testing.T) {
	t.Parallel()

	h := Size{}.withDefaults(OrientationHorizontal)
	assert.Equal(t, horizontalDefaults.Height, h.Height)
	assert.Equal(t, horizontalDefaults.ExpandedSize, h.ExpandedSize)

	v := Size{ExpandedSize: 2, CollapsedSize: 6}.withDefaults(OrientationVertical)
	assert.Equal(t, 2, v.CollapsedSize, "collapsed never exceeds expanded")
	assert.Equal(t, verticalDefaults.Width, v.Width)
}

func TestParseOrientation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{in: "horizontal", want: OrientationHorizontal},
		{in: "false", want: OrientationHorizontal},
		{in: "Vertical", want: OrientationVertical},
		{in: "true", want: OrientationVertical},
		{in: "auto", want: OrientationAuto},
		{in: "", want: OrientationAuto},
		{in: "diagonal", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.NotEmpty(t, got.String())
	}
}
