package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stackerrors "github.com/alexisbeaulieu97/stackcards/pkg/errors"
)

func TestValidateCommand(t *testing.T) {
	path := writeDeck(t, sampleDeck)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name: "positional deck",
			args: []string{"validate", path},
			contains: []string{
				"Deck " + path + " is valid",
				"cards: 3",
				"orientation: horizontal",
				"brightness: 0.00..0.60 over 3 steps",
				"labels: NET CPU STO",
			},
		},
		{
			name:     "embedded deck",
			args:     []string{"validate"},
			contains: []string{"Deck <embedded> is valid", "cards: 5"},
		},
		{
			name: "flag overrides",
			args: []string{"validate", path, "--orientation", "vertical", "--steps", "2", "--invert"},
			contains: []string{
				"orientation: vertical",
				"over 2 steps (inverted)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestValidateCommand_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand("validate", "does-not-exist.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("invalid deck", func(t *testing.T) {
		path := writeDeck(t, "cards:\n  - short_title: X\n")
		_, err := executeCommand("validate", path)
		require.Error(t, err)

		var validationErr *stackerrors.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("override breaks brightness bounds", func(t *testing.T) {
		path := writeDeck(t, sampleDeck)
		_, err := executeCommand("validate", path, "--min", "0.9")
		require.Error(t, err)
		assert.ErrorIs(t, err, stackerrors.ErrInvalidBrightness)
	})

	t.Run("negative steps", func(t *testing.T) {
		path := writeDeck(t, sampleDeck)
		_, err := executeCommand("validate", path, "--steps", "-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, stackerrors.ErrInvalidGradientSteps)
	})
}
