package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	if h.db != nil {
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":    "unhealthy",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
