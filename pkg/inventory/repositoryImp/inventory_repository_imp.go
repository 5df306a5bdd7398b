package repositoryImp

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seedlib/database"
	"seedlib/entities"
	"seedlib/pkg/inventory/repository"
)

type invRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &invRepo{db} }

func (r *invRepo) getWithSeed(seedID uint) (*entities.InventoryWithSeed, error) {
	var out entities.InventoryWithSeed
	err := r.db.Table("inventories").
		Select("inventories.*, seeds.name AS seed_name, seeds.type AS seed_type").
		Joins("LEFT JOIN seeds ON seeds.id = inventories.seed_id").
		Where("inventories.seed_id = ?", seedID).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrCreate reads first, then does a conflict-tolerant insert keyed on
// the seed_id unique index. Two concurrent callers both end up reading the
// single surviving row.
func (r *invRepo) GetOrCreate(seedID uint) (*entities.InventoryWithSeed, error) {
	existing, err := r.getWithSeed(seedID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	fresh := entities.Inventory{
		SeedID:      seedID,
		LastUpdated: entities.Now(),
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "seed_id"}},
		DoNothing: true,
	}).Create(&fresh).Error
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, repository.ErrSeedNotFound
		}
		if !database.IsUniqueViolation(err) {
			return nil, err
		}
	}

	created, err := r.getWithSeed(seedID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, repository.ErrSeedNotFound
	}
	return created, nil
}

func (r *invRepo) Update(seedID uint, patch repository.InventoryPatch) (bool, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return false, nil
	}
	changes["last_updated"] = entities.Now()
	res := r.db.Model(&entities.Inventory{}).Where("seed_id = ?", seedID).Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	log.Printf("[inventory] updated inventory for seed %d", seedID)
	return true, nil
}

func (r *invRepo) GetAll() ([]entities.InventoryWithSeed, error) {
	var out []entities.InventoryWithSeed
	err := r.db.Table("inventories").
		Select("inventories.*, seeds.name AS seed_name, seeds.type AS seed_type").
		Joins("LEFT JOIN seeds ON seeds.id = inventories.seed_id").
		Order("seeds.name").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) CreateAdjustment(adj *entities.InventoryAdjustment) (uint, error) {
	if !adj.AdjustedAt.Valid {
		adj.AdjustedAt = entities.Now()
	}
	if err := r.db.Create(adj).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return 0, repository.ErrSeedNotFound
		}
		return 0, err
	}
	log.Printf("[inventory] created adjustment %d for seed %d", adj.ID, adj.SeedID)
	return adj.ID, nil
}

func (r *invRepo) GetAdjustments(seedID uint) ([]entities.AdjustmentWithSeed, error) {
	q := r.db.Table("inventory_adjustments").
		Select("inventory_adjustments.*, seeds.name AS seed_name").
		Joins("LEFT JOIN seeds ON seeds.id = inventory_adjustments.seed_id").
		Order("inventory_adjustments.adjusted_at DESC")
	if seedID != 0 {
		q = q.Where("inventory_adjustments.seed_id = ?", seedID)
	}
	var out []entities.AdjustmentWithSeed
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
