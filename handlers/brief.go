package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scanbrief/analysis"
)

// Handler serves the brief API over one injected scan source.
type Handler struct {
	Source       analysis.ScanSource
	DefaultHours int
}

// New builds the handler set. defaultHours is the window used when a request
// carries no usable hours parameter; negative values fall back to the
// package-wide default.
func New(source analysis.ScanSource, defaultHours int) *Handler {
	if defaultHours < 0 {
		defaultHours = analysis.DefaultWindowHours
	}
	return &Handler{Source: source, DefaultHours: defaultHours}
}

// GetBrief returns the full JSON brief.
func (h *Handler) GetBrief(c *gin.Context) {
	brief := analysis.GenerateBrief(h.Source, h.windowHours(c))
	c.JSON(http.StatusOK, brief)
}

// GetTickers returns only the ranked ticker list.
func (h *Handler) GetTickers(c *gin.Context) {
	records := h.Source.Load(h.windowHours(c))
	c.JSON(http.StatusOK, analysis.ExtractTickers(records))
}

// GetCommodities returns only the ranked commodity keywords.
func (h *Handler) GetCommodities(c *gin.Context) {
	records := h.Source.Load(h.windowHours(c))
	c.JSON(http.StatusOK, analysis.ExtractCommodities(records))
}

// GetFear returns the fear gauge and its raw input.
func (h *Handler) GetFear(c *gin.Context) {
	records := h.Source.Load(h.windowHours(c))
	commodities := analysis.ExtractCommodities(records)
	c.JSON(http.StatusOK, gin.H{
		"gauge":      analysis.FearGauge(commodities),
		"goldSilver": analysis.GoldSilverMentions(commodities),
	})
}

// windowHours reads the hours query parameter. Absent or invalid values fall
// back to the configured default window; 0 means unfiltered.
func (h *Handler) windowHours(c *gin.Context) int {
	raw := c.Query("hours")
	if raw == "" {
		return h.DefaultHours
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours < 0 {
		return h.DefaultHours
	}
	return hours
}
