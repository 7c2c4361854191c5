package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/sealkit/sqlseal/internal/pkg/keyutil"
	"github.com/sealkit/sqlseal/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CapabilityResponse reports whether this build carries an encryption codec.
type CapabilityResponse struct {
	Enabled bool `json:"enabled"`
}

// RegisterDatabaseRequest asks the server to open and track a database file.
// KeyHex is required when the file is already encrypted: the key must reach
// the driver at open time.
type RegisterDatabaseRequest struct {
	Label  string `json:"label" validate:"required,max=255"`
	Path   string `json:"path" validate:"required"`
	KeyHex string `json:"key_hex" validate:"omitempty,rawkey"`
}

// Validate for validating RegisterDatabaseRequest struct
func (r *RegisterDatabaseRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("rawkey", validators.RawKeyValidation); err != nil {
		return fmt.Errorf("failed to register validator: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Key decodes the optional open key into raw bytes. Returns nil when absent.
func (r *RegisterDatabaseRequest) Key() ([]byte, error) {
	if r.KeyHex == "" {
		return nil, nil
	}
	return keyutil.Decode(r.KeyHex)
}

// KeyRequest carries the hex-encoded raw key for a key-set or re-key operation.
type KeyRequest struct {
	KeyHex string `json:"key_hex" validate:"required,rawkey"`
}

// Validate for validating KeyRequest struct
func (r *KeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("rawkey", validators.RawKeyValidation); err != nil {
		return fmt.Errorf("failed to register validator: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Key decodes the request key into raw bytes.
func (r *KeyRequest) Key() ([]byte, error) {
	return keyutil.Decode(r.KeyHex)
}

// KeyStatusResponse reports the codec status of a key operation.
type KeyStatusResponse struct {
	Status int `json:"status"`
}

// DatabaseResponse describes a registered database.
type DatabaseResponse struct {
	ID                 string    `json:"id"`
	Label              string    `json:"label"`
	Path               string    `json:"path"`
	DateTimeRegistered time.Time `json:"dateTimeRegistered"`
}

// KeyChangeResponse describes a key-change audit event.
type KeyChangeResponse struct {
	ID              string    `json:"id"`
	DatabaseID      string    `json:"databaseId"`
	DatabaseLabel   string    `json:"databaseLabel"`
	Operation       string    `json:"operation"`
	Status          int       `json:"status"`
	DateTimeApplied time.Time `json:"dateTimeApplied"`
}

func formatValidationError(err error) error {
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
