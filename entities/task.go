package entities

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type TaskType string

const (
	TaskPack    TaskType = "Pack"
	TaskCatalog TaskType = "Catalog"
	TaskReorder TaskType = "Reorder"
)

// TaskStatus is the closed status set. "Pending" is a legacy alias for
// "To Do" and is mapped to it at every read and write boundary.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
	StatusCancelled  TaskStatus = "Cancelled"
)

// NormalizeStatus maps aliases and casing onto the canonical values.
// Empty input means To Do; unknown values pass through trimmed.
func NormalizeStatus(value string) TaskStatus {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return StatusToDo
	}
	switch strings.ToLower(trimmed) {
	case "pending", strings.ToLower(string(StatusToDo)):
		return StatusToDo
	case strings.ToLower(string(StatusInProgress)):
		return StatusInProgress
	case strings.ToLower(string(StatusDone)):
		return StatusDone
	case strings.ToLower(string(StatusCancelled)):
		return StatusCancelled
	}
	return TaskStatus(trimmed)
}

func (s TaskStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

func (s *TaskStatus) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = StatusToDo
	case string:
		*s = NormalizeStatus(v)
	case []byte:
		*s = NormalizeStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TaskStatus", value)
	}
	return nil
}

func (s TaskStatus) Value() (driver.Value, error) {
	return string(NormalizeStatus(string(s))), nil
}

func (TaskStatus) GormDataType() string { return "text" }

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// NormalizePriority defaults blank values to Medium.
func NormalizePriority(value string) TaskPriority {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PriorityMedium
	}
	switch strings.ToLower(trimmed) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	}
	return TaskPriority(trimmed)
}

func (p *TaskPriority) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*p = PriorityMedium
	case string:
		*p = NormalizePriority(v)
	case []byte:
		*p = NormalizePriority(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TaskPriority", value)
	}
	return nil
}

func (p TaskPriority) Value() (driver.Value, error) {
	return string(NormalizePriority(string(p))), nil
}

func (TaskPriority) GormDataType() string { return "text" }

// Task is one follow-up action for a seed. At most one task per
// (seed_id, task_type) exists, enforced by the composite unique index.
type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	SeedID      uint         `gorm:"not null;index;uniqueIndex:uq_tasks_seed_type" json:"seed_id"`
	TaskType    TaskType     `gorm:"not null;uniqueIndex:uq_tasks_seed_type" json:"task_type"`
	Status      TaskStatus   `gorm:"not null" json:"status"`
	Priority    TaskPriority `gorm:"not null;default:Medium" json:"priority"`
	DueDate     Date         `json:"due_date"`
	CompletedAt DateTime     `json:"completed_at"`
	Description string       `json:"description"`
	CreatedAt   DateTime     `json:"created_at"`
	UpdatedAt   DateTime     `json:"updated_at"`
}

// TaskWithSeed is the read model for task listings: the task plus the
// owning seed's name and type, absent when the seed row is gone.
type TaskWithSeed struct {
	Task     `gorm:"embedded"`
	SeedName *string `json:"seed_name"`
	SeedType *string `json:"seed_type"`
}
