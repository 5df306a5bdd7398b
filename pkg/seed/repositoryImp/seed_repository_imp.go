package repositoryImp

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"seedlib/entities"
	"seedlib/pkg/seed/repository"
)

type seedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeedRepository { return &seedRepo{db} }

func (r *seedRepo) Create(seed *entities.Seed) (uint, error) {
	if !seed.CreatedAt.Valid {
		seed.CreatedAt = entities.Now()
	}
	if !seed.UpdatedAt.Valid {
		seed.UpdatedAt = entities.Now()
	}
	if err := r.db.Create(seed).Error; err != nil {
		return 0, err
	}
	log.Printf("[seed] created seed %d", seed.ID)
	return seed.ID, nil
}

func (r *seedRepo) GetAll() ([]entities.Seed, error) {
	var seeds []entities.Seed
	if err := r.db.Order("created_at DESC").Find(&seeds).Error; err != nil {
		return nil, err
	}
	return seeds, nil
}

func (r *seedRepo) GetByID(id uint) (*entities.Seed, error) {
	var seed entities.Seed
	err := r.db.First(&seed, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seed, nil
}

func (r *seedRepo) Update(id uint, patch repository.SeedPatch) (bool, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return false, nil
	}
	changes["updated_at"] = entities.Now()
	res := r.db.Model(&entities.Seed{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	log.Printf("[seed] updated seed %d", id)
	return true, nil
}

// Delete removes the seed and everything hanging off it in one transaction.
// The children are deleted explicitly so the cascade holds even on stores
// opened without the foreign_keys pragma.
func (r *seedRepo) Delete(id uint) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var seed entities.Seed
		if err := tx.First(&seed, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		if err := tx.Where("seed_id = ?", id).Delete(&entities.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("seed_id = ?", id).Delete(&entities.Inventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("seed_id = ?", id).Delete(&entities.InventoryAdjustment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Seed{}, id).Error
	})
	if err != nil {
		return false, err
	}
	if found {
		log.Printf("[seed] deleted seed %d", id)
	}
	return found, nil
}
