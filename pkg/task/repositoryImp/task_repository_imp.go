package repositoryImp

import (
	"log"

	"gorm.io/gorm"

	"seedlib/database"
	"seedlib/entities"
	"seedlib/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(task *entities.Task) (uint, error) {
	task.Status = entities.NormalizeStatus(string(task.Status))
	task.Priority = entities.NormalizePriority(string(task.Priority))
	if !task.CreatedAt.Valid {
		task.CreatedAt = entities.Now()
	}
	if !task.UpdatedAt.Valid {
		task.UpdatedAt = entities.Now()
	}
	if err := r.db.Create(task).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return 0, repository.ErrDuplicateTask
		}
		return 0, err
	}
	log.Printf("[task] created %s task %d for seed %d", task.TaskType, task.ID, task.SeedID)
	return task.ID, nil
}

func (r *taskRepo) GetAll() ([]entities.TaskWithSeed, error) {
	var out []entities.TaskWithSeed
	err := r.db.Table("tasks").
		Select("tasks.*, seeds.name AS seed_name, seeds.type AS seed_type").
		Joins("LEFT JOIN seeds ON seeds.id = tasks.seed_id").
		Order("tasks.created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) GetBySeed(seedID uint) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.Where("seed_id = ?", seedID).Order("created_at DESC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) Update(id uint, patch repository.TaskPatch) (bool, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return false, nil
	}
	// completed_at follows the status unless the caller set it explicitly:
	// Done stamps it, To Do / In Progress clear it, Cancelled leaves it.
	if patch.Status != nil && patch.CompletedAt == nil {
		switch entities.NormalizeStatus(string(*patch.Status)) {
		case entities.StatusDone:
			changes["completed_at"] = entities.Now()
		case entities.StatusToDo, entities.StatusInProgress:
			changes["completed_at"] = entities.DateTime{}
		}
	}
	changes["updated_at"] = entities.Now()
	res := r.db.Model(&entities.Task{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	log.Printf("[task] updated task %d", id)
	return true, nil
}

func (r *taskRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&entities.Task{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	log.Printf("[task] deleted task %d", id)
	return true, nil
}
