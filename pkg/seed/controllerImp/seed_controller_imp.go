package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"seedlib/entities"
	invRepo "seedlib/pkg/inventory/repository"
	"seedlib/pkg/seed/repository"
	taskRepo "seedlib/pkg/task/repository"
	taskSvc "seedlib/pkg/task/service"
)

type SeedCtrl struct {
	repo      repository.SeedRepository
	tasks     taskRepo.TaskRepository
	inventory invRepo.InventoryRepository
	taskSvc   taskSvc.TaskService
}

func New(repo repository.SeedRepository, tasks taskRepo.TaskRepository, inventory invRepo.InventoryRepository, svc taskSvc.TaskService) *SeedCtrl {
	return &SeedCtrl{repo: repo, tasks: tasks, inventory: inventory, taskSvc: svc}
}

type seedForm struct {
	Name          string `json:"name" form:"name"`
	Type          string `json:"type" form:"type"`
	PacketsMade   string `json:"packets_made" form:"packets_made"`
	SeedSource    string `json:"seed_source" form:"seed_source"`
	DateOrdered   string `json:"date_ordered" form:"date_ordered"`
	DateFinished  string `json:"date_finished" form:"date_finished"`
	DateCataloged string `json:"date_cataloged" form:"date_cataloged"`
	DateRanOut    string `json:"date_ran_out" form:"date_ran_out"`
	AmountText    string `json:"amount_text" form:"amount_text"`
}

type seedFields struct {
	name, seedType, seedSource, amountText string
	packets                                int
	ordered, finished, cataloged, ranOut   entities.Date
}

// validate collects every field-level problem instead of failing on the
// first one.
func (f seedForm) validate() (seedFields, []string) {
	var out seedFields
	var errs []string

	out.name = strings.TrimSpace(f.Name)
	out.seedType = strings.TrimSpace(f.Type)
	out.seedSource = strings.TrimSpace(f.SeedSource)
	out.amountText = strings.TrimSpace(f.AmountText)
	if out.name == "" {
		errs = append(errs, "name must not be empty")
	}
	if out.seedType == "" {
		errs = append(errs, "type must not be empty")
	}

	if strings.TrimSpace(f.PacketsMade) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(f.PacketsMade))
		if err != nil {
			errs = append(errs, fmt.Sprintf("packets_made: invalid value %q", f.PacketsMade))
		} else if n < 0 {
			errs = append(errs, "packets_made must be non-negative")
		} else {
			out.packets = n
		}
	}

	parse := func(field, raw string, dst *entities.Date) {
		d, err := entities.ParseDate(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", field, err))
			return
		}
		*dst = d
	}
	parse("date_ordered", f.DateOrdered, &out.ordered)
	parse("date_finished", f.DateFinished, &out.finished)
	parse("date_cataloged", f.DateCataloged, &out.cataloged)
	parse("date_ran_out", f.DateRanOut, &out.ranOut)

	return out, errs
}

func (h *SeedCtrl) Create(c echo.Context) error {
	var form seedForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}
	fields, errs := form.validate()
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
	}

	seed := &entities.Seed{
		Type:          fields.seedType,
		Name:          fields.name,
		PacketsMade:   fields.packets,
		SeedSource:    fields.seedSource,
		DateOrdered:   fields.ordered,
		DateFinished:  fields.finished,
		DateCataloged: fields.cataloged,
		DateRanOut:    fields.ranOut,
		AmountText:    fields.amountText,
	}
	id, err := h.repo.Create(seed)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create seed"})
	}
	if _, err := h.taskSvc.AutoGenerateForSeed(id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not generate tasks"})
	}
	return c.JSON(http.StatusCreated, seed)
}

func (h *SeedCtrl) List(c echo.Context) error {
	seeds, err := h.repo.GetAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list seeds"})
	}
	return c.JSON(http.StatusOK, seeds)
}

func (h *SeedCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	seed, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load seed"})
	}
	if seed == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seed not found"})
	}

	tasks, err := h.tasks.GetBySeed(seed.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load tasks"})
	}
	inventory, err := h.inventory.GetOrCreate(seed.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load inventory"})
	}
	adjustments, err := h.inventory.GetAdjustments(seed.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load adjustments"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"seed":        seed,
		"tasks":       tasks,
		"inventory":   inventory,
		"adjustments": adjustments,
	})
}

func (h *SeedCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var form seedForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}
	fields, errs := form.validate()
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
	}

	patch := repository.SeedPatch{
		Type:          &fields.seedType,
		Name:          &fields.name,
		PacketsMade:   &fields.packets,
		SeedSource:    &fields.seedSource,
		DateOrdered:   &fields.ordered,
		DateFinished:  &fields.finished,
		DateCataloged: &fields.cataloged,
		DateRanOut:    &fields.ranOut,
		AmountText:    &fields.amountText,
	}
	ok, err := h.repo.Update(uint(id), patch)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update seed"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seed not found"})
	}
	if _, err := h.taskSvc.AutoGenerateForSeed(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not generate tasks"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SeedCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ok, err := h.repo.Delete(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete seed"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seed not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
