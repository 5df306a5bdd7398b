package entities

// Inventory is the one-per-seed stock record, created lazily on first
// access. current_amount is deliberately free text ("50 packets").
type Inventory struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	SeedID        uint     `gorm:"not null;uniqueIndex" json:"seed_id"`
	CurrentAmount string   `json:"current_amount"`
	BuyMore       bool     `json:"buy_more"`
	Extra         bool     `json:"extra"`
	Notes         string   `json:"notes"`
	LastUpdated   DateTime `json:"last_updated"`
}

type InventoryWithSeed struct {
	Inventory `gorm:"embedded"`
	SeedName  *string `json:"seed_name"`
	SeedType  *string `json:"seed_type"`
}

// InventoryAdjustment is an append-only audit entry. Rows are never updated
// or individually deleted; they only go away with the owning seed.
type InventoryAdjustment struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	SeedID         uint     `gorm:"not null;index" json:"seed_id"`
	AdjustmentType string   `gorm:"not null" json:"adjustment_type"`
	AmountChange   string   `json:"amount_change"`
	Reason         string   `json:"reason"`
	AdjustedAt     DateTime `json:"adjusted_at"`
}

type AdjustmentWithSeed struct {
	InventoryAdjustment `gorm:"embedded"`
	SeedName            *string `json:"seed_name"`
}
