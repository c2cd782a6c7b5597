package platform

import (
	"context"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/infrastructure/config"
	"github.com/sahaara/core/internal/ports"
)

// Device is the configured stand-in for the host's permission and
// geolocation capabilities. A terminal has no GPS, so the permission state
// and the coordinate pair come from configuration; the acceptance flow does
// not know the difference.
type Device struct {
	cfg config.LocationConfig
}

// NewDevice creates a device from the location configuration.
func NewDevice(cfg config.LocationConfig) *Device {
	return &Device{cfg: cfg}
}

// QueryPermission answers the configured permission state without prompting.
// "prompt" means the platform has not decided yet and maps to Denied for the
// purposes of gating, the same way the views treated any non-granted answer.
func (d *Device) QueryPermission(ctx context.Context) (entities.PermissionState, error) {
	switch d.cfg.Permission {
	case "granted":
		return entities.PermissionGranted, nil
	case "denied", "prompt":
		return entities.PermissionDenied, nil
	default:
		return entities.PermissionUnknown, entities.ErrPermissionNotSupported
	}
}

// CurrentPosition produces the one-shot reading. A device configured with
// permission "denied" refuses the request; an unavailable device simulates
// signal loss.
func (d *Device) CurrentPosition(ctx context.Context) (entities.Position, error) {
	if d.cfg.Permission == "denied" {
		return entities.Position{}, entities.ErrPermissionDenied
	}
	if !d.cfg.Available {
		return entities.Position{}, entities.ErrLocationUnavailable
	}
	return entities.Position{
		Latitude:  d.cfg.Latitude,
		Longitude: d.cfg.Longitude,
	}, nil
}

var (
	_ ports.PermissionQuerier = (*Device)(nil)
	_ ports.Geolocator        = (*Device)(nil)
)
