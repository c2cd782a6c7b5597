package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sahaara/core/internal/domain/entities"
)

// Validator wraps the validator
type Validator struct {
	validate *validator.Validate
}

// New creates a struct validator for request types.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and reports failures as entities.ErrValidation
// so callers can branch on the taxonomy without inspecting field errors.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrValidation, err)
	}
	return nil
}
