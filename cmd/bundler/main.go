package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scanbrief/config"
	"scanbrief/models"
	"scanbrief/scans"
)

// The bundler snapshots the live scan directory into one JSON array so the
// server has a fallback when the directory is rotated or empty. Unlike the
// server path, it tallies the records it had to drop.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	entries, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("cannot read scan directory")
	}

	var records []models.ScanRecord
	parseErrors := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		rec, err := scans.ParseFile(filepath.Join(cfg.DataDir, entry.Name()))
		if err != nil {
			parseErrors++
			log.Warn().Err(err).Str("file", entry.Name()).Msg("dropping unparseable scan")
			continue
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot encode archive")
	}
	if err := os.WriteFile(cfg.ArchiveFile, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", cfg.ArchiveFile).Msg("cannot write archive")
	}

	log.Info().Int("bundled", len(records)).Int("parseErrors", parseErrors).
		Str("file", cfg.ArchiveFile).Msg("archive written")
}
