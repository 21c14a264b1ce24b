package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanbrief/analysis"
)

func newHTMLRouter(source *stubSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(source, analysis.DefaultWindowHours)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	r.NoRoute(h.NotFound)
	r.GET("/dashboard", h.Dashboard)
	return r
}

func TestDashboard_RendersHTML(t *testing.T) {
	source := &stubSource{}

	w := get(t, newHTMLRouter(source), "/dashboard")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Scan Brief")
	assert.Contains(t, w.Body.String(), "NO DATA")
}

func TestNotFound_RendersErrorPage(t *testing.T) {
	w := get(t, newHTMLRouter(&stubSource{}), "/nope")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}
