// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store key-change audit records on
// SQLite or PostgreSQL. The package includes validation and logging
// for traceability and error handling.
package persistence
