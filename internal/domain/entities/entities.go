package entities

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNoSession              = errors.New("no active session")
	ErrTaskNotFound           = errors.New("task not found")
	ErrValidation             = errors.New("validation failed")
	ErrConsentDeclined        = errors.New("location consent declined")
	ErrPermissionDenied       = errors.New("location permission denied")
	ErrLocationUnavailable    = errors.New("location unavailable")
	ErrPermissionNotSupported = errors.New("location not supported on this device")
)

// Enums and types
type RewardType string

const (
	RewardTypeMoney  RewardType = "money"
	RewardTypeFavor  RewardType = "favor"
	RewardTypeBarter RewardType = "barter"
)

type TaskStatus string

const (
	TaskStatusAvailable TaskStatus = "available"
	TaskStatusAccepted  TaskStatus = "accepted"
	TaskStatusCompleted TaskStatus = "completed"
)

// PermissionState tracks the device location permission for the lifetime of a
// view. It is re-derived on every mount and never persisted.
type PermissionState string

const (
	PermissionUnknown PermissionState = "unknown"
	PermissionDenied  PermissionState = "denied"
	PermissionGranted PermissionState = "granted"
)

// Session represents the locally persisted identity of the signed-in user.
// The JSON field names match the legacy document layout, so an existing
// sahaara_user document keeps working.
type Session struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// IsValid reports whether a stored session document is usable. A session
// without a name cannot own tasks, so it is treated as absent.
func (s *Session) IsValid() bool {
	return s != nil && s.Name != ""
}

// Task represents a postable unit of help with an associated reward.
// Every task belongs to exactly one poster.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Reward      string     `json:"reward"`
	Type        RewardType `json:"type"`
	TimePosted  string     `json:"timePosted"`
	Poster      string     `json:"poster"`
	Rating      float64    `json:"rating"`
	Status      TaskStatus `json:"status,omitempty"`
	AcceptedBy  string     `json:"acceptedBy,omitempty"`
}

// Position is a one-shot device location reading.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MatchesSearch reports whether the task matches a search term as a
// case-insensitive substring of its title, description, or location.
// An empty term matches everything.
func (t *Task) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Location), term)
}

// PostedBy reports whether the task was authored by the named user.
func (t *Task) PostedBy(name string) bool {
	return t.Poster == name
}

// Utility methods
func (rt RewardType) IsValid() bool {
	switch rt {
	case RewardTypeMoney, RewardTypeFavor, RewardTypeBarter:
		return true
	default:
		return false
	}
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusAvailable, TaskStatusAccepted, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

func (ps PermissionState) Granted() bool {
	return ps == PermissionGranted
}
