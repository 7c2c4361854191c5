// Package sqlitecodec selects the SQLite encryption codec at build time.
// Builds with the sqlcipher tag carry the SQLCipher-enabled driver and forward
// key operations as PRAGMA key / PRAGMA rekey statements; default builds carry
// the plain driver and a stub codec that reports every key operation as
// unavailable. Available reports which variant was compiled in.

package sqlitecodec
