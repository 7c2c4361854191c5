// Package testutil provides shared helpers for tests.
package testutil

import "github.com/sealkit/sqlseal/internal/pkg/logger"

// NoopLogger discards everything. Panic still panics so broken invariants
// surface in tests.
type NoopLogger struct{}

// NewNoopLogger returns a logger that discards all output.
func NewNoopLogger() logger.Logger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(args ...interface{}) {}
func (l *NoopLogger) Info(args ...interface{})  {}
func (l *NoopLogger) Warn(args ...interface{})  {}
func (l *NoopLogger) Error(args ...interface{}) {}
func (l *NoopLogger) Fatal(args ...interface{}) {}
func (l *NoopLogger) Panic(args ...interface{}) {
	panic("noop logger panic")
}
