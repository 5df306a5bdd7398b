package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"seedlib/entities"
	seedRepo "seedlib/pkg/seed/repository"
	taskRepo "seedlib/pkg/task/repository"
	taskSvc "seedlib/pkg/task/service"
)

const recentTaskLimit = 10

type DashboardCtrl struct {
	seeds   seedRepo.SeedRepository
	tasks   taskRepo.TaskRepository
	taskSvc taskSvc.TaskService
}

func New(seeds seedRepo.SeedRepository, tasks taskRepo.TaskRepository, svc taskSvc.TaskService) *DashboardCtrl {
	return &DashboardCtrl{seeds: seeds, tasks: tasks, taskSvc: svc}
}

func (h *DashboardCtrl) Overview(c echo.Context) error {
	metrics, err := h.taskSvc.Metrics()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not compute metrics"})
	}
	seeds, err := h.seeds.GetAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load seeds"})
	}
	tasks, err := h.tasks.GetAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load tasks"})
	}
	if len(tasks) > recentTaskLimit {
		tasks = tasks[:recentTaskLimit]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"metrics":         metrics,
		"seeds_count":     len(seeds),
		"recent_tasks":    tasks,
		"category_counts": categoryCounts(seeds),
	})
}

func categoryCounts(seeds []entities.Seed) map[string]int {
	counts := map[string]int{}
	for _, seed := range seeds {
		category := seed.Type
		if category == "" {
			category = "Uncategorized"
		}
		counts[category]++
	}
	return counts
}
