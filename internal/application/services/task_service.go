package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/infrastructure/metrics"
	"github.com/sahaara/core/internal/infrastructure/validation"
	"github.com/sahaara/core/internal/ports"
)

const defaultRating = 5.0

// TaskService handles task authoring and browsing over the local store.
type TaskService struct {
	taskRepo  ports.TaskRepository
	validator *validation.Validator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, validator *validation.Validator, m *metrics.Metrics, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		validator: validator,
		metrics:   m,
		logger:    logger,
	}
}

// PostTask validates the authoring form and appends a new task to the stored
// list. Validation failure writes nothing. The task id is a fresh UUID; the
// legacy creation-timestamp id collides under rapid posts and was not worth
// preserving.
func (s *TaskService) PostTask(ctx context.Context, session *entities.Session, req ports.CreateTaskRequest) (*entities.Task, error) {
	if !session.IsValid() {
		return nil, entities.ErrNoSession
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	task := entities.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Reward:      req.Reward,
		Type:        req.Type,
		TimePosted:  "Just now",
		Poster:      session.Name,
		Rating:      defaultRating,
		Status:      entities.TaskStatusAvailable,
	}

	if err := s.taskRepo.Append(ctx, task); err != nil {
		return nil, fmt.Errorf("post task: %w", err)
	}

	s.metrics.TasksPosted.Inc()
	s.logger.Infow("Task posted", "task_id", task.ID, "title", task.Title, "poster", task.Poster)

	return &task, nil
}

// Browse returns the task corpus for the viewer: the sample catalog followed
// by stored tasks from other posters, filtered by the search term. The
// viewer's own tasks are excluded here and surfaced by PostedBy instead.
func (s *TaskService) Browse(ctx context.Context, session *entities.Session, search string) ([]entities.Task, error) {
	if !session.IsValid() {
		return nil, entities.ErrNoSession
	}

	stored, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse tasks: %w", err)
	}

	corpus := SampleTasks()
	for _, task := range stored {
		if !task.PostedBy(session.Name) {
			corpus = append(corpus, task)
		}
	}

	filtered := make([]entities.Task, 0, len(corpus))
	for _, task := range corpus {
		if task.MatchesSearch(search) {
			filtered = append(filtered, task)
		}
	}

	return filtered, nil
}

// PostedBy returns the viewer's own stored tasks in storage order.
func (s *TaskService) PostedBy(ctx context.Context, session *entities.Session) ([]entities.Task, error) {
	if !session.IsValid() {
		return nil, entities.ErrNoSession
	}

	stored, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posted tasks: %w", err)
	}

	own := make([]entities.Task, 0)
	for _, task := range stored {
		if task.PostedBy(session.Name) {
			own = append(own, task)
		}
	}

	return own, nil
}

// FindInCorpus looks a task up by id across the sample catalog and the
// stored list, for the accept command.
func (s *TaskService) FindInCorpus(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	for _, task := range SampleTasks() {
		if task.ID == id {
			return &task, nil
		}
	}

	stored, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	for _, task := range stored {
		if task.ID == id {
			return &task, nil
		}
	}

	return nil, entities.ErrTaskNotFound
}
