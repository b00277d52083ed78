// Package brightness derives the per-card dimming intensity from a card's
// distance to the active card.
//
// Intensity is quantized: each index of distance adds a whole-percent step of
// round(100/steps). The banding this produces is part of the visual contract
// and must not be replaced by a continuous fraction.
package brightness

import (
	"math"

	"github.com/alexisbeaulieu97/stackcards/pkg/mathx"
)

// Params are the caller-supplied gradient settings. Steps is the number of
// gradient bands; zero means one band per card.
type Params struct {
	Steps  int
	Min    float64
	Max    float64
	Invert bool
}

// DefaultParams spans the full [0, 1] range with one band per card.
func DefaultParams() Params {
	return Params{Min: 0, Max: 1}
}

// UnitStep returns the rounded percentage added per index of distance.
// Steps below one are treated as a single band.
func UnitStep(steps int) int {
	if steps < 1 {
		steps = 1
	}
	return int(math.Round(100 / float64(steps)))
}

// Raw returns the unclamped, uninverted intensity for a distance.
func Raw(distance, steps int) float64 {
	if distance < 0 {
		distance = -distance
	}
	return float64(distance*UnitStep(steps)) / 100
}

// IntensityFor returns the intensity of the card at index while active is
// expanded. The result always lies in [p.Min, p.Max].
func IntensityFor(index, active int, p Params) float64 {
	raw := Raw(index-active, p.Steps)
	if p.Invert {
		raw = 1 - raw
	}
	return mathx.Clamp(raw, p.Min, p.Max)
}

// Mapper computes intensities for a whole deck, resolving the default step
// count from the number of cards.
type Mapper struct {
	params Params
}

// NewMapper returns a Mapper for the supplied parameters.
func NewMapper(p Params) Mapper {
	return Mapper{params: p}
}

// Params returns the mapper configuration.
func (m Mapper) Params() Params {
	return m.params
}

// StepsFor resolves the effective step count for a deck of count cards.
func (m Mapper) StepsFor(count int) int {
	if m.params.Steps > 0 {
		return m.params.Steps
	}
	if count > 0 {
		return count
	}
	return 1
}

// Gradient returns one intensity per card for the given active index.
func (m Mapper) Gradient(active, count int) []float64 {
	if count <= 0 {
		return nil
	}

	p := m.params
	p.Steps = m.StepsFor(count)

	out := make([]float64, count)
	for i := range out {
		out[i] = IntensityFor(i, active, p)
	}
	return out
}
