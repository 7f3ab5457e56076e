package main

import (
	"bytes"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath(name string) string {
	return filepath.Join("..", "..", "library", "testdata", name)
}

func TestCheckFixtureClean(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newCmd(&stdout, &stderr)
	cmd.SetArgs([]string{fixturePath("seed.json")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Accepted: 6")
	assert.Contains(t, stdout.String(), "Rejected: 0")
	assert.Contains(t, stdout.String(), "B1 - Dune by Frank Herbert (Available)")
	assert.Contains(t, stdout.String(), "Name: Alice, Age: 30, Contact: 555-0001")
}

func TestCheckFixtureRejectsAsJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"--json", fixturePath("rejects.json")})

	err := cmd.Execute()
	assert.ErrorIs(t, err, errRejected)

	var r report
	require.NoError(t, jsoniter.Unmarshal(stdout.Bytes(), &r))
	assert.Equal(t, 1, r.Accepted)
	assert.Len(t, r.Rejected, 4)
	assert.Equal(t, []string{"B1 - Dune by Frank Herbert (Available)"}, r.Books)
	assert.Equal(t, []string{"No members."}, r.Members)
}

func TestCheckFixtureMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := newCmd(&stdout, &stderr)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json")})

	require.Error(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "Error:")
	assert.Empty(t, stdout.String())
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
}
