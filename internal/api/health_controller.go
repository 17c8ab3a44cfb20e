package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/database"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/metrics"
)

// HealthController serves the health check endpoint.
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a health controller. db may be nil when the
// app runs on a non-GORM record store.
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check reports service and database health.
func (h *HealthController) Check(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"

	if h.db != nil {
		if database.CheckHealth(h.db) {
			_ = metrics.UpdateDatabaseConnections(h.db)
		} else {
			status = http.StatusServiceUnavailable
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "not configured"
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"database": dbStatus,
	})
}
