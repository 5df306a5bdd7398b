package entities

// Seed is one catalogued seed lot. The four calendar dates are independently
// nullable and carry no ordering invariant between them.
type Seed struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Type          string   `gorm:"index;not null" json:"type"`
	Name          string   `gorm:"not null" json:"name"`
	PacketsMade   int      `gorm:"default:0" json:"packets_made"`
	SeedSource    string   `json:"seed_source"`
	DateOrdered   Date     `json:"date_ordered"`
	DateFinished  Date     `json:"date_finished"`
	DateCataloged Date     `json:"date_cataloged"`
	DateRanOut    Date     `json:"date_ran_out"`
	AmountText    string   `json:"amount_text"`
	CreatedAt     DateTime `json:"created_at"`
	UpdatedAt     DateTime `json:"updated_at"`

	Tasks       []Task                `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Inventory   *Inventory            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Adjustments []InventoryAdjustment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
