package ports

import "github.com/sahaara/core/internal/domain/entities"

// Request types carried from the presentation layer into the services.
// Validation tags are enforced at the service boundary.

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Location string `validate:"required"`
}

// LoginRequest is the sign-in form. Identity is a stub: the password is
// required by the form but never verified or stored.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// CreateTaskRequest is the task-authoring form. All fields are required.
type CreateTaskRequest struct {
	Title       string              `validate:"required"`
	Description string              `validate:"required"`
	Location    string              `validate:"required"`
	Reward      string              `validate:"required"`
	Type        entities.RewardType `validate:"required,oneof=money favor barter"`
}
