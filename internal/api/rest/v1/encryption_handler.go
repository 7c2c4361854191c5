package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EncryptionHandler defines the interface for handling encryption key operations
type EncryptionHandler interface {
	GetCapability(ctx *gin.Context)
	SetKey(ctx *gin.Context)
	ReKey(ctx *gin.Context)
}

// encryptionHandler struct holds the services
type encryptionHandler struct {
	keyService            encryption.KeyService
	registry              encryption.ConnectionRegistry
	keyChangeAuditService encryption.KeyChangeAuditService
}

// NewEncryptionHandler creates a new EncryptionHandler
func NewEncryptionHandler(keyService encryption.KeyService, registry encryption.ConnectionRegistry, keyChangeAuditService encryption.KeyChangeAuditService) EncryptionHandler {
	return &encryptionHandler{
		keyService:            keyService,
		registry:              registry,
		keyChangeAuditService: keyChangeAuditService,
	}
}

// GetCapability handles the GET request for the encryption capability
// @Summary Report whether encryption support is compiled in
// @Description Returns the build capability. When false, every key operation fails with a fixed message.
// @Tags Encryption
// @Produce json
// @Success 200 {object} CapabilityResponse
// @Router /encryption/capability [get]
func (handler *encryptionHandler) GetCapability(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, CapabilityResponse{Enabled: handler.keyService.IsEnabled()})
}

// SetKey handles the POST request to apply an encryption key to a registered database
// @Summary Set the encryption key on a database
// @Description Apply an encryption key to the referenced database connection. Fails with 409 when the build carries no codec.
// @Tags Encryption
// @Accept json
// @Produce json
// @Param id path string true "Database ID"
// @Param requestBody body KeyRequest true "Hex-encoded raw key"
// @Success 200 {object} KeyStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /databases/{id}/key [post]
func (handler *encryptionHandler) SetKey(ctx *gin.Context) {
	handler.applyKey(ctx, encryption.OperationSetKey)
}

// ReKey handles the POST request to replace the encryption key of a registered database
// @Summary Change the encryption key on a database
// @Description Replace the existing encryption key of the referenced database connection. Fails with 409 when the build carries no codec.
// @Tags Encryption
// @Accept json
// @Produce json
// @Param id path string true "Database ID"
// @Param requestBody body KeyRequest true "Hex-encoded raw key"
// @Success 200 {object} KeyStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /databases/{id}/rekey [post]
func (handler *encryptionHandler) ReKey(ctx *gin.Context) {
	handler.applyKey(ctx, encryption.OperationReKey)
}

func (handler *encryptionHandler) applyKey(ctx *gin.Context, operation string) {
	var request KeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	key, err := request.Key()
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	conn, ref, err := handler.registry.Conn(ctx.Param("id"))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var status int
	switch operation {
	case encryption.OperationSetKey:
		status, err = handler.keyService.SetKey(ctx, conn, key)
	default:
		status, err = handler.keyService.ReKey(ctx, conn, key)
	}

	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()

		// A missing codec is a build fact, not a bad request.
		if errors.Is(err, encryption.ErrNotEnabled) {
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}

		// The request was well-formed; the codec rejected the operation
		// (wrong key, not a database). Its status code travels in the body.
		var codecErr *encryption.CodecError
		if errors.As(err, &codecErr) {
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	event := &encryption.KeyChangeEvent{
		ID:              uuid.New().String(),
		DatabaseID:      ref.ID,
		DatabaseLabel:   ref.Label,
		Operation:       operation,
		Status:          status,
		DateTimeApplied: time.Now().UTC(),
	}
	if err := handler.keyChangeAuditService.Record(ctx, event); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("key applied but audit record failed: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, KeyStatusResponse{Status: status})
}
