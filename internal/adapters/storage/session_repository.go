package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/ports"
)

// SessionRepositoryImpl persists the session document under the fixed
// session key. Documents are parsed and validated on the way out: a corrupt
// or incomplete session behaves exactly like an absent one, which sends the
// caller back to login.
type SessionRepositoryImpl struct {
	store  ports.KeyValueStore
	logger *logger.Logger
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store ports.KeyValueStore, log *logger.Logger) ports.SessionRepository {
	return &SessionRepositoryImpl{store: store, logger: log.WithComponent("session_repository")}
}

func (r *SessionRepositoryImpl) Load(ctx context.Context) (*entities.Session, error) {
	data, found, err := r.store.Get(ctx, ports.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, entities.ErrNoSession
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warnw("Discarding corrupt session document", "error", err)
		return nil, entities.ErrNoSession
	}
	if !session.IsValid() {
		r.logger.Warnw("Discarding incomplete session document")
		return nil, entities.ErrNoSession
	}

	return &session, nil
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, session *entities.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := r.store.Set(ctx, ports.SessionKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepositoryImpl) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, ports.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
