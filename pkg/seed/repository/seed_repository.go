package repository

import "seedlib/entities"

// SeedPatch is a sparse update: only non-nil fields are written. A date
// pointing at an invalid Date clears the column.
type SeedPatch struct {
	Type          *string
	Name          *string
	PacketsMade   *int
	SeedSource    *string
	DateOrdered   *entities.Date
	DateFinished  *entities.Date
	DateCataloged *entities.Date
	DateRanOut    *entities.Date
	AmountText    *string
}

// Changes returns the column assignments the patch requests. Empty map
// means the caller asked for nothing.
func (p SeedPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Type != nil {
		changes["type"] = *p.Type
	}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.PacketsMade != nil {
		changes["packets_made"] = *p.PacketsMade
	}
	if p.SeedSource != nil {
		changes["seed_source"] = *p.SeedSource
	}
	if p.DateOrdered != nil {
		changes["date_ordered"] = *p.DateOrdered
	}
	if p.DateFinished != nil {
		changes["date_finished"] = *p.DateFinished
	}
	if p.DateCataloged != nil {
		changes["date_cataloged"] = *p.DateCataloged
	}
	if p.DateRanOut != nil {
		changes["date_ran_out"] = *p.DateRanOut
	}
	if p.AmountText != nil {
		changes["amount_text"] = *p.AmountText
	}
	return changes
}

type SeedRepository interface {
	Create(seed *entities.Seed) (uint, error)
	GetAll() ([]entities.Seed, error)
	GetByID(id uint) (*entities.Seed, error)
	Update(id uint, patch SeedPatch) (bool, error)
	Delete(id uint) (bool, error)
}
