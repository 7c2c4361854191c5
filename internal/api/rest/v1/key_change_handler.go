package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/gin-gonic/gin"
)

// KeyChangeHandler defines the interface for handling key-change audit queries
type KeyChangeHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyChangeHandler struct holds the audit service
type keyChangeHandler struct {
	keyChangeAuditService encryption.KeyChangeAuditService
}

// NewKeyChangeHandler creates a new KeyChangeHandler
func NewKeyChangeHandler(keyChangeAuditService encryption.KeyChangeAuditService) KeyChangeHandler {
	return &keyChangeHandler{
		keyChangeAuditService: keyChangeAuditService,
	}
}

// List handles the GET request to list key-change events with optional query parameters
// @Summary List key-change audit events based on query parameters
// @Description Fetch key-change events filtered by operation, database and time, with pagination and sorting options.
// @Tags KeyChange
// @Produce json
// @Param operation query string false "Operation (set-key or rekey)"
// @Param databaseId query string false "Database ID"
// @Param appliedAfter query string false "Lower time bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyChangeResponse
// @Failure 400 {object} ErrorResponse
// @Router /key-changes [get]
func (handler *keyChangeHandler) List(ctx *gin.Context) {
	query := encryption.NewKeyChangeQuery()

	if operation := ctx.Query("operation"); len(operation) > 0 {
		query.Operation = operation
	}

	if databaseID := ctx.Query("databaseId"); len(databaseID) > 0 {
		query.DatabaseID = databaseID
	}

	if appliedAfter := ctx.Query("appliedAfter"); len(appliedAfter) > 0 {
		parsed, err := time.Parse(time.RFC3339, appliedAfter)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid appliedAfter: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		query.AppliedAfter = parsed
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid limit: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		query.Limit = parsed
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid offset: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
		query.Offset = parsed
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	events, err := handler.keyChangeAuditService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error listing key-change events: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []KeyChangeResponse{}
	for _, event := range events {
		listResponse = append(listResponse, toKeyChangeResponse(event))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for a single key-change event
// @Summary Get a key-change event by ID
// @Tags KeyChange
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} KeyChangeResponse
// @Failure 404 {object} ErrorResponse
// @Router /key-changes/{id} [get]
func (handler *keyChangeHandler) GetByID(ctx *gin.Context) {
	event, err := handler.keyChangeAuditService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toKeyChangeResponse(event))
}

// DeleteByID handles the DELETE request for a key-change event
// @Summary Delete a key-change event by ID
// @Tags KeyChange
// @Produce json
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /key-changes/{id} [delete]
func (handler *keyChangeHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.keyChangeAuditService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toKeyChangeResponse(event *encryption.KeyChangeEvent) KeyChangeResponse {
	return KeyChangeResponse{
		ID:              event.ID,
		DatabaseID:      event.DatabaseID,
		DatabaseLabel:   event.DatabaseLabel,
		Operation:       event.Operation,
		Status:          event.Status,
		DateTimeApplied: event.DateTimeApplied,
	}
}
