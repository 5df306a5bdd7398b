package repository

import (
	"errors"

	"seedlib/entities"
)

// ErrDuplicateTask signals the (seed_id, task_type) uniqueness constraint.
// Callers generating tasks treat it as "already exists, skip".
var ErrDuplicateTask = errors.New("task of this type already exists for seed")

// TaskPatch is a sparse task update. When Status is set and CompletedAt is
// not, the repository derives completed_at from the transition.
type TaskPatch struct {
	Status      *entities.TaskStatus
	Priority    *entities.TaskPriority
	DueDate     *entities.Date
	CompletedAt *entities.DateTime
	Description *string
}

func (p TaskPatch) Changes() map[string]any {
	changes := map[string]any{}
	if p.Status != nil {
		changes["status"] = entities.NormalizeStatus(string(*p.Status))
	}
	if p.Priority != nil {
		changes["priority"] = entities.NormalizePriority(string(*p.Priority))
	}
	if p.DueDate != nil {
		changes["due_date"] = *p.DueDate
	}
	if p.CompletedAt != nil {
		changes["completed_at"] = *p.CompletedAt
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	return changes
}

type TaskRepository interface {
	Create(task *entities.Task) (uint, error)
	GetAll() ([]entities.TaskWithSeed, error)
	GetBySeed(seedID uint) ([]entities.Task, error)
	Update(id uint, patch TaskPatch) (bool, error)
	Delete(id uint) (bool, error)
}
