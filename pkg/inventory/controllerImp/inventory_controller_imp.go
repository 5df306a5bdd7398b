package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"seedlib/entities"
	"seedlib/pkg/inventory/repository"
)

type InventoryCtrl struct{ repo repository.InventoryRepository }

func New(repo repository.InventoryRepository) *InventoryCtrl { return &InventoryCtrl{repo} }

// List supports ?filter=buy_more|extra.
func (h *InventoryCtrl) List(c echo.Context) error {
	items, err := h.repo.GetAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list inventory"})
	}
	switch c.QueryParam("filter") {
	case "buy_more":
		items = filterInventory(items, func(i entities.InventoryWithSeed) bool { return i.BuyMore })
	case "extra":
		items = filterInventory(items, func(i entities.InventoryWithSeed) bool { return i.Extra })
	}
	return c.JSON(http.StatusOK, items)
}

func filterInventory(items []entities.InventoryWithSeed, keep func(entities.InventoryWithSeed) bool) []entities.InventoryWithSeed {
	out := make([]entities.InventoryWithSeed, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update ensures the record exists, applies the patch, and logs an
// adjustment whenever the textual amount changed.
func (h *InventoryCtrl) Update(c echo.Context) error {
	seedID, _ := strconv.Atoi(c.Param("seed_id"))
	var body struct {
		CurrentAmount string `json:"current_amount" form:"current_amount"`
		BuyMore       bool   `json:"buy_more" form:"buy_more"`
		Extra         bool   `json:"extra" form:"extra"`
		Notes         string `json:"notes" form:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request body"})
	}

	existing, err := h.repo.GetOrCreate(uint(seedID))
	if errors.Is(err, repository.ErrSeedNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "seed not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load inventory"})
	}
	oldAmount := existing.CurrentAmount

	amount := strings.TrimSpace(body.CurrentAmount)
	notes := strings.TrimSpace(body.Notes)
	patch := repository.InventoryPatch{
		CurrentAmount: &amount,
		BuyMore:       &body.BuyMore,
		Extra:         &body.Extra,
		Notes:         &notes,
	}
	if _, err := h.repo.Update(uint(seedID), patch); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update inventory"})
	}

	if oldAmount != amount {
		_, err := h.repo.CreateAdjustment(&entities.InventoryAdjustment{
			SeedID:         uint(seedID),
			AdjustmentType: "Manual Update",
			AmountChange:   fmt.Sprintf("From '%s' to '%s'", oldAmount, amount),
			Reason:         "Inventory update from UI",
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not record adjustment"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Adjustments lists the audit log, optionally scoped by ?seed_id=.
func (h *InventoryCtrl) Adjustments(c echo.Context) error {
	var seedID uint
	if raw := c.QueryParam("seed_id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid seed_id"})
		}
		seedID = uint(n)
	}
	adjustments, err := h.repo.GetAdjustments(seedID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list adjustments"})
	}
	return c.JSON(http.StatusOK, adjustments)
}
