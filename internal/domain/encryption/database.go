package encryption

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DatabaseRef is the metadata for a database tracked by a ConnectionRegistry.
type DatabaseRef struct {
	ID                 string    `validate:"required,uuid"`
	Label              string    `validate:"required,max=255"`
	Path               string    `validate:"required"`
	DateTimeRegistered time.Time `validate:"required"`
}

// Validate for validating DatabaseRef struct
func (r *DatabaseRef) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
