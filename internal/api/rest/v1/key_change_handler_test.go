//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testKeyChangeEvent() *encryption.KeyChangeEvent {
	return &encryption.KeyChangeEvent{
		ID:              uuid.NewString(),
		DatabaseID:      uuid.NewString(),
		DatabaseLabel:   "census",
		Operation:       encryption.OperationSetKey,
		Status:          encryption.StatusOK,
		DateTimeApplied: time.Now(),
	}
}

func TestKeyChangeHandler_List_Success(t *testing.T) {
	mockAuditService := new(MockKeyChangeAuditService)
	handler := NewKeyChangeHandler(mockAuditService)

	event := testKeyChangeEvent()
	mockAuditService.
		On("List", mock.Anything, mock.Anything).
		Return([]*encryption.KeyChangeEvent{event}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/key-changes", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), event.ID)
	mockAuditService.AssertExpectations(t)
}

func TestKeyChangeHandler_List_QueryParameters(t *testing.T) {
	mockAuditService := new(MockKeyChangeAuditService)
	handler := NewKeyChangeHandler(mockAuditService)

	var captured *encryption.KeyChangeQuery
	mockAuditService.
		On("List", mock.Anything, mock.AnythingOfType("*encryption.KeyChangeQuery")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*encryption.KeyChangeQuery)
		}).
		Return([]*encryption.KeyChangeEvent{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/key-changes?operation=rekey&limit=5&offset=2&sortBy=status&sortOrder=asc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, encryption.OperationReKey, captured.Operation)
	assert.Equal(t, 5, captured.Limit)
	assert.Equal(t, 2, captured.Offset)
	assert.Equal(t, "status", captured.SortBy)
	assert.Equal(t, "asc", captured.SortOrder)
}

func TestKeyChangeHandler_List_InvalidLimit(t *testing.T) {
	mockAuditService := new(MockKeyChangeAuditService)
	handler := NewKeyChangeHandler(mockAuditService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/key-changes?limit=many", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuditService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestKeyChangeHandler_GetByID_Success(t *testing.T) {
	mockAuditService := new(MockKeyChangeAuditService)
	handler := NewKeyChangeHandler(mockAuditService)

	event := testKeyChangeEvent()
	mockAuditService.On("GetByID", mock.Anything, event.ID).Return(event, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/key-changes/"+event.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: event.ID}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), event.ID)
}

func TestKeyChangeHandler_GetByID_NotFound(t *testing.T) {
	mockAuditService := new(MockKeyChangeAuditService)
	handler := NewKeyChangeHandler(mockAuditService)

	mockAuditService.
		On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("key-change event with ID missing not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/key-changes/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyChangeHandler_DeleteByID_Success(t *testing.T) {
	mockAuditService := new(MockKeyChangeAuditService)
	handler := NewKeyChangeHandler(mockAuditService)

	event := testKeyChangeEvent()
	mockAuditService.On("DeleteByID", mock.Anything, event.ID).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/key-changes/"+event.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: event.ID}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockAuditService.AssertExpectations(t)
}
