package services

import (
	"context"
	"sync"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/ports"
)

// In-memory repositories and platform fakes used across the service tests.

type memSessionRepo struct {
	session *entities.Session
}

func (r *memSessionRepo) Load(ctx context.Context) (*entities.Session, error) {
	if !r.session.IsValid() {
		return nil, entities.ErrNoSession
	}
	return r.session, nil
}

func (r *memSessionRepo) Save(ctx context.Context, session *entities.Session) error {
	r.session = session
	return nil
}

func (r *memSessionRepo) Clear(ctx context.Context) error {
	r.session = nil
	return nil
}

type memTaskRepo struct {
	tasks []entities.Task
}

func (r *memTaskRepo) List(ctx context.Context) ([]entities.Task, error) {
	out := make([]entities.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memTaskRepo) Append(ctx context.Context, task entities.Task) error {
	r.tasks = append(r.tasks, task)
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []ports.Notification
}

func (n *fakeNotifier) Notify(note ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note)
}

func (n *fakeNotifier) all() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.Notification, len(n.notes))
	copy(out, n.notes)
	return out
}

func (n *fakeNotifier) titles() []string {
	var titles []string
	for _, note := range n.all() {
		titles = append(titles, note.Title)
	}
	return titles
}

type fakeConfirmer struct {
	answer   bool
	asked    int
	messages []string
}

func (c *fakeConfirmer) Confirm(message string) bool {
	c.asked++
	c.messages = append(c.messages, message)
	return c.answer
}

type fakeQuerier struct {
	state entities.PermissionState
	err   error
}

func (q *fakeQuerier) QueryPermission(ctx context.Context) (entities.PermissionState, error) {
	return q.state, q.err
}

type fakeLocator struct {
	pos      entities.Position
	err      error
	requests int
}

func (l *fakeLocator) CurrentPosition(ctx context.Context) (entities.Position, error) {
	l.requests++
	if l.err != nil {
		return entities.Position{}, l.err
	}
	return l.pos, nil
}

var (
	_ ports.SessionRepository = (*memSessionRepo)(nil)
	_ ports.TaskRepository    = (*memTaskRepo)(nil)
	_ ports.Notifier          = (*fakeNotifier)(nil)
	_ ports.Confirmer         = (*fakeConfirmer)(nil)
	_ ports.PermissionQuerier = (*fakeQuerier)(nil)
	_ ports.Geolocator        = (*fakeLocator)(nil)
)
