//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDatabaseHandler_Register_Success(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	ref := testDatabaseRef()
	mockRegistry.
		On("Register", mock.Anything, "census", "/var/lib/sqlseal/census.db", []byte(nil)).
		Return(ref, nil)

	w := httptest.NewRecorder()
	body := `{"label": "census", "path": "/var/lib/sqlseal/census.db"}`
	req, _ := http.NewRequest("POST", "/databases", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), ref.ID)
	mockRegistry.AssertExpectations(t)
}

func TestDatabaseHandler_Register_MissingPath(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/databases", bytes.NewBufferString(`{"label": "census"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRegistry.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDatabaseHandler_Register_WithKey(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	ref := testDatabaseRef()
	key := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10}
	mockRegistry.
		On("Register", mock.Anything, "census", "/var/lib/sqlseal/census.db", key).
		Return(ref, nil)

	w := httptest.NewRecorder()
	body := `{"label": "census", "path": "/var/lib/sqlseal/census.db", "key_hex": "0102030405060708090a0b0c0d0e0f10"}`
	req, _ := http.NewRequest("POST", "/databases", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRegistry.AssertExpectations(t)
}

func TestDatabaseHandler_Register_KeyWithoutCodec(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	mockRegistry.
		On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, encryption.ErrNotEnabled)

	w := httptest.NewRecorder()
	body := `{"label": "census", "path": "/var/lib/sqlseal/census.db", "key_hex": "0102030405060708090a0b0c0d0e0f10"}`
	req, _ := http.NewRequest("POST", "/databases", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDatabaseHandler_Register_InvalidKey(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	w := httptest.NewRecorder()
	body := `{"label": "census", "path": "/var/lib/sqlseal/census.db", "key_hex": "not-hex"}`
	req, _ := http.NewRequest("POST", "/databases", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRegistry.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDatabaseHandler_List_Success(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	ref := testDatabaseRef()
	mockRegistry.On("List").Return([]*encryption.DatabaseRef{ref})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/databases", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ref.Label)
}

func TestDatabaseHandler_GetByID_NotFound(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	mockRegistry.On("Conn", "missing").Return(nil, nil, encryption.ErrUnknownDatabase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/databases/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDatabaseHandler_Close_Success(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	ref := testDatabaseRef()
	mockRegistry.On("Close", ref.ID).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/databases/"+ref.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: ref.ID}}

	handler.Close(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockRegistry.AssertExpectations(t)
}

func TestDatabaseHandler_Close_NotFound(t *testing.T) {
	mockRegistry := new(MockConnectionRegistry)
	handler := NewDatabaseHandler(mockRegistry)

	mockRegistry.On("Close", "missing").Return(encryption.ErrUnknownDatabase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/databases/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Close(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
