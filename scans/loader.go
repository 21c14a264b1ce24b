package scans

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"scanbrief/models"
)

// Loader reads scan records for a trailing time window. The live directory is
// re-read on every call; the archive is an immutable fallback loaded once at
// startup and injected here.
type Loader struct {
	dir     string
	archive []models.ScanRecord
}

// NewLoader builds a loader over a live scan directory and a fallback
// archive. The archive slice is treated as read-only.
func NewLoader(dir string, archive []models.ScanRecord) *Loader {
	return &Loader{dir: dir, archive: archive}
}

// Load returns the scans whose derived timestamp falls inside the trailing
// window of the given hours. hours == 0 disables filtering. Records come back
// in the source's lexicographic file order, not chronological order; the
// split-half analytics depend on that order being stable per source.
//
// Load never fails: an unreadable directory falls back to the archive, and no
// data anywhere yields an empty slice.
func (l *Loader) Load(hours int) []models.ScanRecord {
	records := l.readLive()
	if len(records) == 0 {
		log.Debug().Str("dir", l.dir).Int("archived", len(l.archive)).
			Msg("no live scans, using archive")
		records = l.archive
	}
	if hours <= 0 {
		return records
	}
	cutoff := time.Now().UnixMilli() - int64(hours)*3600_000
	filtered := make([]models.ScanRecord, 0, len(records))
	for _, rec := range records {
		if rec.TS >= cutoff {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// readLive parses every *.json file in the live directory, dropping files
// that fail to parse. os.ReadDir already sorts entries lexicographically.
func (l *Loader) readLive() []models.ScanRecord {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil
	}
	var records []models.ScanRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		rec, err := ParseFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			log.Debug().Err(err).Str("file", entry.Name()).Msg("skipping unparseable scan")
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ParseFile reads one scan file and derives its timestamp.
func ParseFile(path string) (models.ScanRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ScanRecord{}, err
	}
	var rec models.ScanRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.ScanRecord{}, err
	}
	rec.TS = parseTimestamp(rec.Timestamp)
	return rec, nil
}

// LoadArchive reads the bundled JSON-array archive once at startup. Any
// failure yields an empty archive; the service still serves empty briefs.
func LoadArchive(path string) []models.ScanRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("archive not loaded")
		return nil
	}
	var records []models.ScanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("archive not parseable")
		return nil
	}
	for i := range records {
		records[i].TS = parseTimestamp(records[i].Timestamp)
	}
	return records
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(ts string) int64 {
	if ts == "" {
		return 0
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}
