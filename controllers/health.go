package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullah-housing/housing-backend/config"
	"github.com/abdullah-housing/housing-backend/store"
)

// HealthController serves the root message and the /test diagnostics.
// It holds the concrete store handle because diagnostics describe the real
// connection; Store may be nil when the process started without one.
type HealthController struct {
	Store *store.Store
	Cfg   config.Config
}

// Root responds with a static liveness message.
func (h *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Abdullah Housing Backend Running"})
}

// Test reports backend and store status. It never fails: store errors are
// rendered as prose in the status fields.
func (h *HealthController) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Available"
	resp["database_url"] = envStatus(h.Cfg.DatabaseURL)
	resp["database_name"] = envStatus(h.Cfg.DatabaseName)

	ctx, cancel := requestContext()
	defer cancel()

	names, err := h.Store.Collections(ctx)
	if err != nil {
		resp["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		c.JSON(http.StatusOK, resp)
		return
	}

	if len(names) > 10 {
		names = names[:10]
	}
	resp["collections"] = names
	resp["database"] = "✅ Connected & Working"
	resp["connection_status"] = "Connected"

	c.JSON(http.StatusOK, resp)
}

func envStatus(val string) string {
	if val == "" {
		return "❌ Not Set"
	}
	return "✅ Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
