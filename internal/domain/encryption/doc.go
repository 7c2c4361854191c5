// Package encryption defines the core interfaces and structures for gating and
// applying SQLite database encryption, including the pluggable codec contract,
// the key-set and re-key service operations, and the key-change audit records.
// The actual page-level encryption is performed by an external codec; builds
// without one report every key operation as unavailable.

package encryption
