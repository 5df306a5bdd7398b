package service

// TaskMetrics is the dashboard aggregate computed from one scan of all
// tasks. Percentages are rounded to one decimal.
type TaskMetrics struct {
	Total                int     `json:"total"`
	Done                 int     `json:"done"`
	InProgress           int     `json:"in_progress"`
	ToDo                 int     `json:"todo"`
	Cancelled            int     `json:"cancelled"`
	Overdue              int     `json:"overdue"`
	DueToday             int     `json:"due_today"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type TaskService interface {
	// AutoGenerateForSeed derives the required follow-up tasks from the
	// seed's current field values. Idempotent; a missing seed yields an
	// empty result, not an error.
	AutoGenerateForSeed(seedID uint) ([]uint, error)
	Metrics() (TaskMetrics, error)
}
