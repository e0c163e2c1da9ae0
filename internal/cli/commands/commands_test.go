// Package commands_test provides tests for CLI command creation.
package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"port", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewStatsCommand(t *testing.T) {
	cmd := NewStatsCommand()

	assert.Equal(t, "stats", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewReportCommand(t *testing.T) {
	cmd := NewReportCommand()

	assert.Equal(t, "report <calls|sales>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"start", "end"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewSeedCommand(t *testing.T) {
	cmd := NewSeedCommand()

	assert.Equal(t, "seed <file.json>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("collection"), "flag collection should exist")
}

func TestReadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kixie_calls.json")

	docs := []map[string]any{
		{"id": "k1", "agent": "Alice", "outcome": "connected"},
		{"agent": "Bob", "outcome": "no answer"},
	}
	data, err := json.Marshal(docs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	records, err := readSeedFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "k1", records[0].ID)
	assert.Equal(t, "Alice", records[0].Fields["agent"])
	assert.Empty(t, records[1].ID, "document without id gets one assigned at insert")
}

func TestReadSeedFile_NotAnArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "x"}`), 0600))

	_, err := readSeedFile(path)
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	params, err := parseRange(&ReportOptions{Start: "2026-03-01", End: "2026-03-31"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", params.Start.Format(reportDateLayout))
	assert.Equal(t, "2026-03-31", params.End.Format(reportDateLayout))

	params, err = parseRange(&ReportOptions{})
	require.NoError(t, err)
	assert.True(t, params.Start.IsZero())
	assert.True(t, params.End.IsZero())

	_, err = parseRange(&ReportOptions{Start: "03/01/2026"})
	assert.Error(t, err)
}
