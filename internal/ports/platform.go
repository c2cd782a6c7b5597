package ports

import (
	"context"

	"github.com/sahaara/core/internal/domain/entities"
)

// Platform capabilities consumed by the application but provided by the host
// device/presentation layer. None of these are implemented by the core; the
// CLI supplies terminal-backed versions and tests supply fakes.

// PermissionQuerier answers the current geolocation permission without
// prompting the user.
type PermissionQuerier interface {
	QueryPermission(ctx context.Context) (entities.PermissionState, error)
}

// Geolocator produces a one-shot device location reading. Requesting a
// position may prompt the user at the platform level; a denial surfaces as an
// error.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (entities.Position, error)
}

// Notification is a transient user-visible message.
type Notification struct {
	Title       string
	Description string
	// Destructive marks error-variant notifications.
	Destructive bool
}

// Notifier renders transient notifications (the toast surface).
type Notifier interface {
	Notify(n Notification)
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}
