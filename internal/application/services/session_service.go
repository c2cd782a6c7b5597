package services

import (
	"context"
	"fmt"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/infrastructure/metrics"
	"github.com/sahaara/core/internal/infrastructure/validation"
	"github.com/sahaara/core/internal/ports"
)

// SessionService handles the stub identity lifecycle. There is no credential
// verification anywhere: a valid form always produces a session. The session
// lives in the local store until logout.
type SessionService struct {
	sessionRepo ports.SessionRepository
	validator   *validation.Validator
	notifier    ports.Notifier
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo ports.SessionRepository, validator *validation.Validator, notifier ports.Notifier, m *metrics.Metrics, logger *logger.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		validator:   validator,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
	}
}

// Register creates a session from the sign-up form and persists it.
func (s *SessionService) Register(ctx context.Context, req ports.RegisterRequest) (*entities.Session, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session := &entities.Session{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.metrics.SessionsStarted.Inc()
	s.logger.Infow("Session created", "user", session.Name, "via", "register")
	s.notifier.Notify(ports.Notification{Title: "Account created successfully!"})

	return session, nil
}

// Login creates a session from the sign-in form. The login form carries no
// name or location, so the legacy defaults apply.
func (s *SessionService) Login(ctx context.Context, req ports.LoginRequest) (*entities.Session, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session := &entities.Session{
		Name:     "User",
		Email:    req.Email,
		Location: "Local Area",
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.metrics.SessionsStarted.Inc()
	s.logger.Infow("Session created", "user", session.Name, "via", "login")
	s.notifier.Notify(ports.Notification{Title: "Welcome back!"})

	return session, nil
}

// Current returns the active session, or entities.ErrNoSession. Every
// session-gated view calls this at mount and redirects to login on error.
func (s *SessionService) Current(ctx context.Context) (*entities.Session, error) {
	session, err := s.sessionRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Logout clears the persisted session.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.metrics.SessionsEnded.Inc()
	s.logger.Infow("Session cleared")
	return nil
}
