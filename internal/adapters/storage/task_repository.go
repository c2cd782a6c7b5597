package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/ports"
)

// TaskRepositoryImpl persists the user-authored task list as one JSON array
// document. Append reads the whole list, adds the task, and writes the whole
// list back; two concurrent writers are last-write-wins, which is the
// accepted storage model.
type TaskRepositoryImpl struct {
	store  ports.KeyValueStore
	logger *logger.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(store ports.KeyValueStore, log *logger.Logger) ports.TaskRepository {
	return &TaskRepositoryImpl{store: store, logger: log.WithComponent("task_repository")}
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]entities.Task, error) {
	data, found, err := r.store.Get(ctx, ports.UserTasksKey)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if !found {
		return []entities.Task{}, nil
	}

	var tasks []entities.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		// A corrupt task list is recovered as empty rather than wedging every
		// view that reads it. The broken document stays in place until the
		// next append overwrites it.
		r.logger.Warnw("Recovering corrupt task list as empty", "error", err)
		return []entities.Task{}, nil
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) Append(ctx context.Context, task entities.Task) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("append task: %w", err)
	}

	tasks = append(tasks, task)

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("append task: %w", err)
	}
	if err := r.store.Set(ctx, ports.UserTasksKey, data); err != nil {
		return fmt.Errorf("append task: %w", err)
	}

	return nil
}
