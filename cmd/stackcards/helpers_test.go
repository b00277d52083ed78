package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDeck = `cards:
  - title: Networking
    short_title: NET
    items: [TCP, UDP]
  - title: Compute
    short_title: CPU
  - title: Storage
    short_title: STO
style:
  orientation: horizontal
  max_brightness: 0.6
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
