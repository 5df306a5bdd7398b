package repository

import (
	"errors"

	"seedlib/entities"
)

// ErrSeedNotFound is returned when an inventory operation references a seed
// that does not exist (or was just deleted).
var ErrSeedNotFound = errors.New("seed not found")

type InventoryPatch struct {
	CurrentAmount *string
	BuyMore       *bool
	Extra         *bool
	Notes         *string
}

func (p InventoryPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.CurrentAmount != nil {
		changes["current_amount"] = *p.CurrentAmount
	}
	if p.BuyMore != nil {
		changes["buy_more"] = *p.BuyMore
	}
	if p.Extra != nil {
		changes["extra"] = *p.Extra
	}
	if p.Notes != nil {
		changes["notes"] = *p.Notes
	}
	return changes
}

type InventoryRepository interface {
	// GetOrCreate returns the seed's inventory record, creating an empty
	// one atomically if absent.
	GetOrCreate(seedID uint) (*entities.InventoryWithSeed, error)
	// Update is keyed by seed_id, not the inventory id.
	Update(seedID uint, patch InventoryPatch) (bool, error)
	GetAll() ([]entities.InventoryWithSeed, error)
	CreateAdjustment(adj *entities.InventoryAdjustment) (uint, error)
	// GetAdjustments lists the audit log newest-first; seedID 0 means all.
	GetAdjustments(seedID uint) ([]entities.AdjustmentWithSeed, error)
}
