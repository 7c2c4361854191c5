package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/gin-gonic/gin"
)

// DatabaseHandler defines the interface for handling database registration
type DatabaseHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Close(ctx *gin.Context)
}

// databaseHandler struct holds the registry
type databaseHandler struct {
	registry encryption.ConnectionRegistry
}

// NewDatabaseHandler creates a new DatabaseHandler
func NewDatabaseHandler(registry encryption.ConnectionRegistry) DatabaseHandler {
	return &databaseHandler{
		registry: registry,
	}
}

// Register handles the POST request to open and track a database file
// @Summary Register a database
// @Description Open the database at the given path and track it under a fresh ID. An already encrypted file needs its key supplied here.
// @Tags Database
// @Accept json
// @Produce json
// @Param requestBody body RegisterDatabaseRequest true "Database label, path and optional open key"
// @Success 201 {object} DatabaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /databases [post]
func (handler *databaseHandler) Register(ctx *gin.Context) {
	var request RegisterDatabaseRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid database data: %v", err.Error())
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

	ref, err := handler.registry.Register(ctx, request.Label, request.Path, key)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error registering database: %v", err.Error())

		// Registering with a key needs a codec compiled in.
		if errors.Is(err, encryption.ErrNotEnabled) {
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toDatabaseResponse(ref))
}

// List handles the GET request to list registered databases
// @Summary List registered databases
// @Tags Database
// @Produce json
// @Success 200 {array} DatabaseResponse
// @Router /databases [get]
func (handler *databaseHandler) List(ctx *gin.Context) {
	var listResponse = []DatabaseResponse{}
	for _, ref := range handler.registry.List() {
		listResponse = append(listResponse, toDatabaseResponse(ref))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for a single registered database
// @Summary Get a registered database by ID
// @Tags Database
// @Produce json
// @Param id path string true "Database ID"
// @Success 200 {object} DatabaseResponse
// @Failure 404 {object} ErrorResponse
// @Router /databases/{id} [get]
func (handler *databaseHandler) GetByID(ctx *gin.Context) {
	_, ref, err := handler.registry.Conn(ctx.Param("id"))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toDatabaseResponse(ref))
}

// Close handles the DELETE request to close and forget a registered database
// @Summary Close a registered database
// @Tags Database
// @Produce json
// @Param id path string true "Database ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /databases/{id} [delete]
func (handler *databaseHandler) Close(ctx *gin.Context) {
	if err := handler.registry.Close(ctx.Param("id")); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()

		if errors.Is(err, encryption.ErrUnknownDatabase) {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toDatabaseResponse(ref *encryption.DatabaseRef) DatabaseResponse {
	return DatabaseResponse{
		ID:                 ref.ID,
		Label:              ref.Label,
		Path:               ref.Path,
		DateTimeRegistered: ref.DateTimeRegistered,
	}
}
