package scans

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanbrief/models"
)

func writeScan(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func scanJSON(ts time.Time) string {
	return fmt.Sprintf(`{"timestamp": %q, "tickers": {"BTC": 1}}`, ts.Format(time.RFC3339))
}

func TestLoader_SkipsUnparseableRecords(t *testing.T) {
	dir := t.TempDir()
	writeScan(t, dir, "scan-001.json", scanJSON(time.Now()))
	writeScan(t, dir, "scan-002.json", `{broken`)
	writeScan(t, dir, "scan-003.json", scanJSON(time.Now()))
	writeScan(t, dir, "notes.txt", "not a scan")

	records := NewLoader(dir, nil).Load(0)

	assert.Len(t, records, 2)
}

func TestLoader_LexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	writeScan(t, dir, "scan-010.json", `{"tickers": {"B": 1}}`)
	writeScan(t, dir, "scan-002.json", `{"tickers": {"A": 1}}`)

	records := NewLoader(dir, nil).Load(0)

	require.Len(t, records, 2)
	tally := NewMentionTally()
	CollectTickers(records[0], tally)
	assert.Equal(t, 1.0, tally.Count("A"), "scan-002 sorts before scan-010")
}

func TestLoader_WindowFiltering(t *testing.T) {
	dir := t.TempDir()
	writeScan(t, dir, "recent.json", scanJSON(time.Now().Add(-1*time.Hour)))
	writeScan(t, dir, "stale.json", scanJSON(time.Now().Add(-100*time.Hour)))
	writeScan(t, dir, "undated.json", `{"tickers": {"BTC": 1}}`)

	loader := NewLoader(dir, nil)

	assert.Len(t, loader.Load(24), 1, "stale and undated records fall outside the window")
	assert.Len(t, loader.Load(0), 3, "zero hours disables filtering")
}

func TestLoader_FallsBackToArchive(t *testing.T) {
	archive := []models.ScanRecord{
		{Timestamp: time.Now().Format(time.RFC3339), TS: time.Now().UnixMilli()},
	}

	t.Run("missing directory", func(t *testing.T) {
		records := NewLoader(filepath.Join(t.TempDir(), "nope"), archive).Load(24)
		assert.Len(t, records, 1)
	})

	t.Run("directory with only unparseable files", func(t *testing.T) {
		dir := t.TempDir()
		writeScan(t, dir, "bad.json", "{{{")
		records := NewLoader(dir, archive).Load(24)
		assert.Len(t, records, 1)
	})

	t.Run("no data anywhere yields empty", func(t *testing.T) {
		records := NewLoader(filepath.Join(t.TempDir(), "nope"), nil).Load(24)
		assert.Empty(t, records)
	})
}

func TestLoader_LivePreferredOverArchive(t *testing.T) {
	dir := t.TempDir()
	writeScan(t, dir, "live.json", scanJSON(time.Now()))
	archive := []models.ScanRecord{{TS: time.Now().UnixMilli()}, {TS: time.Now().UnixMilli()}}

	records := NewLoader(dir, archive).Load(0)

	assert.Len(t, records, 1)
}

func TestParseFile_DerivesTimestamp(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	writeScan(t, dir, "scan.json", scanJSON(ts))

	rec, err := ParseFile(filepath.Join(dir, "scan.json"))

	require.NoError(t, err)
	assert.Equal(t, ts.UnixMilli(), rec.TS)
}

func TestParseFile_UnparseableTimestampIsZero(t *testing.T) {
	dir := t.TempDir()
	writeScan(t, dir, "scan.json", `{"timestamp": "yesterday-ish"}`)

	rec, err := ParseFile(filepath.Join(dir, "scan.json"))

	require.NoError(t, err)
	assert.Zero(t, rec.TS)
}

func TestLoadArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.json")
	body := fmt.Sprintf(`[{"timestamp": %q}, {"timestamp": ""}]`, time.Now().Format(time.RFC3339))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	records := LoadArchive(path)

	require.Len(t, records, 2)
	assert.NotZero(t, records[0].TS)
	assert.Zero(t, records[1].TS)

	assert.Empty(t, LoadArchive(filepath.Join(dir, "missing.json")))
}
