package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/infrastructure/metrics"
	"github.com/sahaara/core/internal/ports"
)

// AcceptanceService runs the consent-gated location-sharing flow behind
// "help with this task". Sharing a coordinate pair is the one
// privacy-sensitive action in the system, so a non-granted state always goes
// through an explicit confirmation naming the poster before any location
// request is issued.
//
// Permission state lives for the service's lifetime only; it is re-derived
// by Mount on the next run and never persisted.
type AcceptanceService struct {
	querier   ports.PermissionQuerier
	locator   ports.Geolocator
	notifier  ports.Notifier
	confirmer ports.Confirmer
	metrics   *metrics.Metrics
	logger    *logger.Logger

	// followUpDelay is how long after a successful acceptance the next-steps
	// notification fires. The timer is fire-and-forget and not cancellable.
	followUpDelay time.Duration

	mu    sync.Mutex
	state entities.PermissionState
}

// NewAcceptanceService creates a new acceptance service
func NewAcceptanceService(querier ports.PermissionQuerier, locator ports.Geolocator, notifier ports.Notifier, confirmer ports.Confirmer, followUpDelay time.Duration, m *metrics.Metrics, logger *logger.Logger) *AcceptanceService {
	return &AcceptanceService{
		querier:       querier,
		locator:       locator,
		notifier:      notifier,
		confirmer:     confirmer,
		metrics:       m,
		logger:        logger,
		followUpDelay: followUpDelay,
		state:         entities.PermissionUnknown,
	}
}

// Mount resolves the initial permission state asynchronously. The caller
// does not wait on it: until the query answers, the state stays Unknown and
// acceptance attempts take the non-granted path.
func (s *AcceptanceService) Mount(ctx context.Context) {
	go func() {
		state, err := s.querier.QueryPermission(ctx)
		if err != nil {
			s.logger.Debugw("Permission query failed", "error", err)
			return
		}
		s.mu.Lock()
		s.state = state
		s.mu.Unlock()
		s.logger.Debugw("Permission state resolved", "state", state)
	}()
}

// State returns the current permission state.
func (s *AcceptanceService) State() entities.PermissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Accept runs one task-acceptance attempt. On success it returns the shared
// position after exactly one immediate notification; a second follow-up
// notification fires after the configured delay.
func (s *AcceptanceService) Accept(ctx context.Context, task *entities.Task) (*entities.Position, error) {
	if s.State().Granted() {
		return s.shareLocation(ctx, task)
	}

	message := fmt.Sprintf(
		"To accept %q, you'll need to share your location with %s for coordination. Enable location access?",
		task.Title, task.Poster,
	)
	if !s.confirmer.Confirm(message) {
		// Declined: abort with no side effects. State is untouched and no
		// location request was issued.
		s.metrics.AcceptanceAttempts.WithLabelValues(metrics.ResultConsentDeclined).Inc()
		s.logger.Infow("Acceptance declined at consent prompt", "task_id", task.ID)
		return nil, entities.ErrConsentDeclined
	}

	if _, err := s.locator.CurrentPosition(ctx); err != nil {
		// The platform denied the request or the user dismissed its prompt.
		// Stay non-granted; the user has to re-invoke the action to retry.
		s.notifier.Notify(ports.Notification{
			Title:       "Location Access Required",
			Description: "Location sharing is needed to coordinate with task posters.",
			Destructive: true,
		})
		s.metrics.AcceptanceAttempts.WithLabelValues(metrics.ResultPermissionDenied).Inc()
		s.logger.Infow("Location permission denied", "task_id", task.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", entities.ErrPermissionDenied, err)
	}

	s.mu.Lock()
	s.state = entities.PermissionGranted
	s.mu.Unlock()

	return s.shareLocation(ctx, task)
}

// RequestPermission is the standalone "enable location sharing" action on
// the dashboard: a one-shot request with its own notifications, outside any
// acceptance attempt.
func (s *AcceptanceService) RequestPermission(ctx context.Context) error {
	if _, err := s.locator.CurrentPosition(ctx); err != nil {
		s.notifier.Notify(ports.Notification{
			Title:       "Location Access Denied",
			Description: "Location sharing won't be available for task coordination.",
			Destructive: true,
		})
		return fmt.Errorf("%w: %v", entities.ErrPermissionDenied, err)
	}

	s.mu.Lock()
	s.state = entities.PermissionGranted
	s.mu.Unlock()

	s.notifier.Notify(ports.Notification{
		Title:       "Location Access Granted",
		Description: "Your location will be shared when you accept tasks.",
	})
	return nil
}

// shareLocation is the granted branch: a one-shot reading, the acceptance
// notification, and the deferred next-steps notification. A failed reading
// is transient; the granted state is kept.
func (s *AcceptanceService) shareLocation(ctx context.Context, task *entities.Task) (*entities.Position, error) {
	pos, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		s.notifier.Notify(ports.Notification{
			Title:       "Location Error",
			Description: "Could not get your location. Please try again.",
			Destructive: true,
		})
		s.metrics.AcceptanceAttempts.WithLabelValues(metrics.ResultLocationError).Inc()
		s.logger.Warnw("Location reading failed", "task_id", task.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", entities.ErrLocationUnavailable, err)
	}

	s.notifier.Notify(ports.Notification{
		Title:       "🤝 Task Accepted!",
		Description: fmt.Sprintf("Location shared with %s. You can now coordinate directly!", task.Poster),
	})
	s.metrics.AcceptanceAttempts.WithLabelValues(metrics.ResultAccepted).Inc()
	s.logger.Infow("Task accepted",
		"task_id", task.ID,
		"poster", task.Poster,
		"latitude", pos.Latitude,
		"longitude", pos.Longitude,
	)

	poster := task.Poster
	time.AfterFunc(s.followUpDelay, func() {
		s.notifier.Notify(ports.Notification{
			Title:       "Next Steps",
			Description: fmt.Sprintf("Message %s to coordinate the details. Location sharing is active.", poster),
		})
	})

	return &pos, nil
}
