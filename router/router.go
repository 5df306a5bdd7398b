package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	seedCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	taskCtrl interface {
		List(echo.Context) error
		UpdateStatus(echo.Context) error
		Update(echo.Context) error
		BulkUpdate(echo.Context) error
		Delete(echo.Context) error
	},
	invCtrl interface {
		List(echo.Context) error
		Update(echo.Context) error
		Adjustments(echo.Context) error
	},
	importCtrl interface {
		Upload(echo.Context) error
		Confirm(echo.Context) error
	},
	dashCtrl interface{ Overview(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/dashboard", dashCtrl.Overview)

	e.POST("/seeds", seedCtrl.Create)
	e.GET("/seeds", seedCtrl.List)
	e.GET("/seeds/:id", seedCtrl.Get)
	e.PUT("/seeds/:id", seedCtrl.Update)
	e.DELETE("/seeds/:id", seedCtrl.Delete)

	e.GET("/tasks", taskCtrl.List)
	e.PATCH("/tasks/:id/status", taskCtrl.UpdateStatus)
	e.PATCH("/tasks/:id", taskCtrl.Update)
	e.POST("/tasks/bulk-update", taskCtrl.BulkUpdate)
	e.DELETE("/tasks/:id", taskCtrl.Delete)

	e.GET("/inventory", invCtrl.List)
	e.GET("/inventory/adjustments", invCtrl.Adjustments)
	e.PUT("/inventory/:seed_id", invCtrl.Update)

	e.POST("/import/upload", importCtrl.Upload)
	e.POST("/import/confirm", importCtrl.Confirm)

	return e
}
