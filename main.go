package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scanbrief/config"
	"scanbrief/handlers"
	"scanbrief/scans"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	// The archive is loaded once and stays immutable for the process
	// lifetime; every request re-reads the live directory.
	archive := scans.LoadArchive(cfg.ArchiveFile)
	loader := scans.NewLoader(cfg.DataDir, archive)
	h := handlers.New(loader, cfg.WindowHours)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.LoadHTMLGlob("templates/*")
	r.NoRoute(h.NotFound)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/dashboard")
	})

	r.GET("/dashboard", h.Dashboard)

	api := r.Group("/api")
	{
		api.GET("/brief", h.GetBrief)
		api.GET("/tickers", h.GetTickers)
		api.GET("/commodities", h.GetCommodities)
		api.GET("/fear", h.GetFear)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Str("dataDir", cfg.DataDir).
		Int("archived", len(archive)).Msg("🚀 starting scan brief server")
	log.Info().Msgf("📊 Dashboard: http://localhost%s/dashboard", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
