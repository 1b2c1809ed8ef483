package actionlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := Entry{
		Timestamp: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Action:    "add",
		Details:   "2025-03-01 coffee 3.50",
		Outcome:   "ok",
	}
	require.NoError(t, Append(dir, []Entry{first}))

	second := Entry{
		Timestamp: time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC),
		Action:    "export",
		Details:   "date=2025-03-01",
		Outcome:   "forbidden: admin only",
	}
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, "ok", entries[0].Outcome)
	assert.Equal(t, "export", entries[1].Action)
	assert.True(t, entries[0].Timestamp.Before(entries[1].Timestamp))
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	e := Entry{Timestamp: time.Now().UTC(), Action: "login", Details: "alice", Outcome: "ok"}

	require.NoError(t, Append(dir, []Entry{e}))
	require.NoError(t, Append(dir, []Entry{e}))

	data, err := os.ReadFile(filepath.Join(dir, "actions.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"not-a-time", "add", "x", "ok"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestUnmarshalEntry_WrongWidth(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
}
