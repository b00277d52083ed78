package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{name: "inside range", v: 3, lo: 0, hi: 4, want: 3},
		{name: "below range", v: -7, lo: 0, hi: 4, want: 0},
		{name: "above range", v: 9, lo: 0, hi: 4, want: 4},
		{name: "on lower bound", v: 0, lo: 0, hi: 4, want: 0},
		{name: "on upper bound", v: 4, lo: 0, hi: 4, want: 4},
		{name: "inverted bounds favour lower", v: 2, lo: 5, hi: 1, want: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Clamp(tc.v, tc.lo, tc.hi))
		})
	}
}

func TestClampFloatNaN(t *testing.T) {
	t.Parallel()

	// NaN fails both comparisons and is returned unchanged.
	require.True(t, math.IsNaN(Clamp(math.NaN(), 0.0, 1.0)))
	require.Equal(t, 0.25, Clamp(0.25, 0.0, 1.0))
	require.Equal(t, 1.0, Clamp(1.5, 0.0, 1.0))
}

func TestSign(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Sign(120))
	require.Equal(t, -1, Sign(-3))
	require.Equal(t, 0, Sign(0))
}
