package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"seedlib/config"
	"seedlib/database"
	"seedlib/router"

	// Seed
	seedCtrlImp "seedlib/pkg/seed/controllerImp"
	seedRepoImp "seedlib/pkg/seed/repositoryImp"

	// Task
	taskCtrlImp "seedlib/pkg/task/controllerImp"
	taskRepoImp "seedlib/pkg/task/repositoryImp"
	taskSvcImp "seedlib/pkg/task/serviceImp"

	// Inventory
	invCtrlImp "seedlib/pkg/inventory/controllerImp"
	invRepoImp "seedlib/pkg/inventory/repositoryImp"

	// Import
	importCtrlImp "seedlib/pkg/importer/controllerImp"
	importSvcImp "seedlib/pkg/importer/serviceImp"

	// Dashboard + Health
	dashCtrlImp "seedlib/pkg/dashboard/controllerImp"
	healthCtrlImp "seedlib/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create db dir: %v", err)
		}
	}
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos
	seeds := seedRepoImp.New(db)
	tasks := taskRepoImp.New(db)
	inventory := invRepoImp.New(db)

	// 5) Services
	taskSvc := taskSvcImp.New(seeds, tasks)
	importSvc := importSvcImp.New(seeds, inventory)

	// 6) Controllers
	seedCtrl := seedCtrlImp.New(seeds, tasks, inventory, taskSvc)
	taskCtrl := taskCtrlImp.New(tasks)
	invCtrl := invCtrlImp.New(inventory)
	importCtrl := importCtrlImp.New(cfg, importSvc, taskSvc)
	dashCtrl := dashCtrlImp.New(seeds, tasks, taskSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router + start
	r := router.New(e, seedCtrl, taskCtrl, invCtrl, importCtrl, dashCtrl, healthCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
