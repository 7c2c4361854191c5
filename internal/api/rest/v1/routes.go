package v1

import (
	"github.com/sealkit/sqlseal/internal/domain/encryption"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyService encryption.KeyService,
	registry encryption.ConnectionRegistry,
	keyChangeAuditService encryption.KeyChangeAuditService) {

	v1 := r.Group(BasePath)

	// Capability and key operations
	encryptionHandler := NewEncryptionHandler(keyService, registry, keyChangeAuditService)
	v1.GET("/encryption/capability", encryptionHandler.GetCapability)
	v1.POST("/databases/:id/key", encryptionHandler.SetKey)
	v1.POST("/databases/:id/rekey", encryptionHandler.ReKey)

	// Database registration
	databaseHandler := NewDatabaseHandler(registry)
	v1.POST("/databases", databaseHandler.Register)
	v1.GET("/databases", databaseHandler.List)
	v1.GET("/databases/:id", databaseHandler.GetByID)
	v1.DELETE("/databases/:id", databaseHandler.Close)

	// Key-change audit trail
	keyChangeHandler := NewKeyChangeHandler(keyChangeAuditService)
	v1.GET("/key-changes", keyChangeHandler.List)
	v1.GET("/key-changes/:id", keyChangeHandler.GetByID)
	v1.DELETE("/key-changes/:id", keyChangeHandler.DeleteByID)
}
