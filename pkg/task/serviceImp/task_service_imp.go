package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"seedlib/entities"
	seedRepo "seedlib/pkg/seed/repository"
	"seedlib/pkg/task/repository"
	"seedlib/pkg/task/service"
)

type taskService struct {
	seeds seedRepo.SeedRepository
	tasks repository.TaskRepository
}

func New(seeds seedRepo.SeedRepository, tasks repository.TaskRepository) service.TaskService {
	return &taskService{seeds: seeds, tasks: tasks}
}

// AutoGenerateForSeed applies the three static rules. A task type that ever
// existed for the seed blocks regeneration, whatever its status.
func (s *taskService) AutoGenerateForSeed(seedID uint) ([]uint, error) {
	seed, err := s.seeds.GetByID(seedID)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		log.Printf("[task] seed %d not found, cannot generate tasks", seedID)
		return []uint{}, nil
	}

	existing, err := s.tasks.GetBySeed(seedID)
	if err != nil {
		return nil, err
	}
	have := map[entities.TaskType]bool{}
	for _, t := range existing {
		have[t.TaskType] = true
	}

	today := time.Now()
	created := []uint{}

	add := func(task *entities.Task) error {
		id, err := s.tasks.Create(task)
		if errors.Is(err, repository.ErrDuplicateTask) {
			// concurrent caller got there first
			return nil
		}
		if err != nil {
			return err
		}
		created = append(created, id)
		return nil
	}

	if !have[entities.TaskPack] && !seed.DateFinished.Valid {
		err := add(&entities.Task{
			SeedID:      seedID,
			TaskType:    entities.TaskPack,
			Status:      entities.StatusToDo,
			Priority:    entities.PriorityMedium,
			DueDate:     entities.NewDate(today.AddDate(0, 0, 7)),
			Description: fmt.Sprintf("Pack %s into packets", seed.Name),
		})
		if err != nil {
			return created, err
		}
	}

	if !have[entities.TaskCatalog] && seed.DateFinished.Valid && !seed.DateCataloged.Valid {
		err := add(&entities.Task{
			SeedID:      seedID,
			TaskType:    entities.TaskCatalog,
			Status:      entities.StatusToDo,
			Priority:    entities.PriorityMedium,
			DueDate:     entities.NewDate(today.AddDate(0, 0, 3)),
			Description: fmt.Sprintf("Catalog %s in the system", seed.Name),
		})
		if err != nil {
			return created, err
		}
	}

	if !have[entities.TaskReorder] && seed.DateRanOut.Valid {
		source := seed.SeedSource
		if source == "" {
			source = "supplier"
		}
		err := add(&entities.Task{
			SeedID:      seedID,
			TaskType:    entities.TaskReorder,
			Status:      entities.StatusToDo,
			Priority:    entities.PriorityHigh,
			DueDate:     entities.NewDate(today.AddDate(0, 0, 5)),
			Description: fmt.Sprintf("Reorder %s from %s", seed.Name, source),
		})
		if err != nil {
			return created, err
		}
	}

	return created, nil
}

func (s *taskService) Metrics() (service.TaskMetrics, error) {
	tasks, err := s.tasks.GetAll()
	if err != nil {
		return service.TaskMetrics{}, err
	}

	today := entities.NewDate(time.Now())
	m := service.TaskMetrics{Total: len(tasks)}

	for _, t := range tasks {
		switch t.Status {
		case entities.StatusDone:
			m.Done++
		case entities.StatusInProgress:
			m.InProgress++
		case entities.StatusCancelled:
			m.Cancelled++
		default:
			m.ToDo++
		}
		// malformed due dates scan as null and drop out here
		if t.Status.Terminal() || !t.DueDate.Valid {
			continue
		}
		if t.DueDate.Time.Before(today.Time) {
			m.Overdue++
		} else if t.DueDate.Time.Equal(today.Time) {
			m.DueToday++
		}
	}

	if m.Total > 0 {
		m.CompletionPercentage = math.Round(float64(m.Done)/float64(m.Total)*1000) / 10
	}
	return m, nil
}
