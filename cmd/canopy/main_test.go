package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_ListsSubcommands(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	for _, sub := range []string{"analyze", "report", "graph", "validate", "serve", "export", "new"} {
		assert.Contains(t, output, sub)
	}
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"frobnicate"})
	assert.Error(t, cmd.Execute())
}

func TestValidationFailureError(t *testing.T) {
	err := &ValidationFailureError{Message: "2 of 3 file(s) failed validation"}
	assert.Equal(t, "2 of 3 file(s) failed validation", err.Error())
}
