package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"seedlib/entities"
	"seedlib/pkg/task/repository"
)

type TaskCtrl struct{ repo repository.TaskRepository }

func New(repo repository.TaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

// List supports ?filter=todo|in_progress|done|cancelled|overdue and
// ?priority=Low|Medium|High.
func (h *TaskCtrl) List(c echo.Context) error {
	tasks, err := h.repo.GetAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list tasks"})
	}

	filter := c.QueryParam("filter")
	priority := c.QueryParam("priority")

	filtered := make([]entities.TaskWithSeed, 0, len(tasks))
	today := entities.NewDate(time.Now())
	for _, t := range tasks {
		switch filter {
		case "todo":
			if t.Status != entities.StatusToDo {
				continue
			}
		case "in_progress":
			if t.Status != entities.StatusInProgress {
				continue
			}
		case "done":
			if t.Status != entities.StatusDone {
				continue
			}
		case "cancelled":
			if t.Status != entities.StatusCancelled {
				continue
			}
		case "overdue":
			if t.Status.Terminal() || !t.DueDate.Valid || !t.DueDate.Time.Before(today.Time) {
				continue
			}
		}
		if priority != "" && t.Priority != entities.NormalizePriority(priority) {
			continue
		}
		filtered = append(filtered, t)
	}

	return c.JSON(http.StatusOK, filtered)
}

func (h *TaskCtrl) UpdateStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}
	status := entities.NormalizeStatus(body.Status)
	ok, err := h.repo.Update(uint(id), repository.TaskPatch{Status: &status})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update task"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type taskPatchBody struct {
	Status      *string `json:"status" form:"status"`
	Priority    *string `json:"priority" form:"priority"`
	DueDate     *string `json:"due_date" form:"due_date"`
	Description *string `json:"description" form:"description"`
}

func (b taskPatchBody) toPatch() (repository.TaskPatch, error) {
	var patch repository.TaskPatch
	if b.Status != nil {
		status := entities.NormalizeStatus(*b.Status)
		patch.Status = &status
	}
	if b.Priority != nil {
		priority := entities.NormalizePriority(*b.Priority)
		patch.Priority = &priority
	}
	if b.DueDate != nil {
		due, err := entities.ParseDate(*b.DueDate)
		if err != nil {
			return patch, err
		}
		patch.DueDate = &due
	}
	if b.Description != nil {
		patch.Description = b.Description
	}
	return patch, nil
}

func (h *TaskCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body taskPatchBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}
	patch, err := body.toPatch()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	ok, err := h.repo.Update(uint(id), patch)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update task"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// BulkUpdate applies one status/priority/due-date change to a set of tasks.
func (h *TaskCtrl) BulkUpdate(c echo.Context) error {
	var body struct {
		TaskIDs []uint `json:"task_ids" form:"task_ids"`
		taskPatchBody
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}
	if len(body.TaskIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Select at least one task to apply bulk changes."})
	}
	patch, err := body.toPatch()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updated := 0
	for _, id := range body.TaskIDs {
		ok, err := h.repo.Update(id, patch)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update tasks"})
		}
		if ok {
			updated++
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "updated": updated})
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ok, err := h.repo.Delete(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete task"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
