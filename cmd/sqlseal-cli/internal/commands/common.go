package commands

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sealkit/sqlseal/internal/infrastructure/sqlitecodec"
	"github.com/sealkit/sqlseal/internal/pkg/config"
	"github.com/sealkit/sqlseal/internal/pkg/keyutil"
	"github.com/sealkit/sqlseal/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase opens the SQLite database at path with the driver selected at
// build time. A non-nil key reaches the driver at open time, which an already
// encrypted file requires. The pool is capped at one connection so key
// pragmas issued later stay on the connection they keyed. The caller is
// responsible for closing the returned handle.
func openDatabase(path string, key []byte) (*sql.DB, error) {
	dsn, err := sqlitecodec.ConnString(filepath.Clean(path), key)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(sqlitecodec.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// readKey loads a raw key either from a hex string or from a key file,
// depending on which flag was set. Exactly one source must be provided.
func readKey(keyHex, keyFile string) ([]byte, error) {
	if keyHex != "" && keyFile != "" {
		return nil, fmt.Errorf("only one of --key and --key-file may be set")
	}

	if keyFile != "" {
		data, err := os.ReadFile(filepath.Clean(keyFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}
		keyHex = strings.TrimSpace(string(data))
	}

	if keyHex == "" {
		return nil, fmt.Errorf("one of --key and --key-file is required")
	}

	key, err := keyutil.Decode(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}

	return key, nil
}
