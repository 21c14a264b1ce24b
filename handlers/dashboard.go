package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scanbrief/analysis"
	"scanbrief/models"
)

// DashboardData feeds the server-rendered dashboard template.
type DashboardData struct {
	Brief models.Brief
	Hours int
}

// Dashboard renders the brief as HTML.
func (h *Handler) Dashboard(c *gin.Context) {
	hours := h.windowHours(c)
	data := DashboardData{
		Brief: analysis.GenerateBrief(h.Source, hours),
		Hours: hours,
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}

// NotFound renders the error page for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Page not found"})
}
