package encryption

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Key-change operation kinds
const (
	OperationSetKey = "set-key"
	OperationReKey  = "rekey"
)

// KeyChangeEvent is the audit record written after a key operation succeeds.
// It holds metadata only: which database, which operation, what the codec
// reported and when. Key material never appears here.
type KeyChangeEvent struct {
	ID              string    `validate:"required,uuid"`
	DatabaseID      string    `validate:"required,uuid"`
	DatabaseLabel   string    `validate:"omitempty,max=255"`
	Operation       string    `validate:"required,oneof=set-key rekey"`
	Status          int       `validate:"gte=0"`
	DateTimeApplied time.Time `validate:"required"`
}

// Validate for validating KeyChangeEvent struct
func (e *KeyChangeEvent) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
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

// KeyChangeQuery filters and paginates key-change event listings.
type KeyChangeQuery struct {
	Operation    string    `validate:"omitempty,oneof=set-key rekey"`
	DatabaseID   string    `validate:"omitempty,uuid"`
	AppliedAfter time.Time `validate:"omitempty"`

	Limit  int `validate:"gte=0"`
	Offset int `validate:"gte=0"`

	SortBy    string `validate:"omitempty,oneof=operation status date_time_applied"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyChangeQuery creates a KeyChangeQuery with default pagination.
func NewKeyChangeQuery() *KeyChangeQuery {
	return &KeyChangeQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_applied",
		SortOrder: "desc",
	}
}

// Validate for validating KeyChangeQuery struct
func (q *KeyChangeQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
