package commands

import (
	"errors"
	"fmt"

	"github.com/sealkit/sqlseal/internal/app"
	"github.com/sealkit/sqlseal/internal/domain/encryption"
	"github.com/sealkit/sqlseal/internal/infrastructure/sqlitecodec"
	"github.com/sealkit/sqlseal/internal/pkg/keyutil"
	"github.com/sealkit/sqlseal/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling SQLite key operations via CLI.
type KeyCommandHandler struct {
	keyService encryption.KeyService
	logger     logger.Logger
}

// NewKeyCommandHandler initializes and returns a KeyCommandHandler instance with
// configured logger and key service.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyService, err := app.NewEncryptionService(sqlitecodec.New(), sqlitecodec.Available(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	return &KeyCommandHandler{
		keyService: keyService,
		logger:     loggerInstance,
	}, nil
}

// StatusCmd reports whether this binary carries an encryption codec
func (commandHandler *KeyCommandHandler) StatusCmd(_ *cobra.Command, _ []string) {
	if commandHandler.keyService.IsEnabled() {
		commandHandler.logger.Info("SQLite encryption is enabled in this build")
		return
	}
	commandHandler.logger.Info(encryption.NotEnabledMessage)
}

// SetKeyCmd sets the encryption key of a SQLite database
func (commandHandler *KeyCommandHandler) SetKeyCmd(cmd *cobra.Command, _ []string) {
	commandHandler.applyKey(cmd, encryption.OperationSetKey)
}

// ReKeyCmd changes the encryption key of an already keyed SQLite database
func (commandHandler *KeyCommandHandler) ReKeyCmd(cmd *cobra.Command, _ []string) {
	commandHandler.applyKey(cmd, encryption.OperationReKey)
}

func (commandHandler *KeyCommandHandler) applyKey(cmd *cobra.Command, operation string) {
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		commandHandler.logger.Error("invalid db flag ", err)
		return
	}
	keyHex, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag ", err)
		return
	}

	key, err := readKey(keyHex, keyFile)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	// Re-keying works on an encrypted database, which can only be opened
	// with its current key.
	var openKey []byte
	if operation == encryption.OperationReKey {
		oldKeyHex, err := cmd.Flags().GetString("old-key")
		if err != nil {
			commandHandler.logger.Error("invalid old-key flag ", err)
			return
		}
		oldKeyFile, err := cmd.Flags().GetString("old-key-file")
		if err != nil {
			commandHandler.logger.Error("invalid old-key-file flag ", err)
			return
		}
		openKey, err = readKey(oldKeyHex, oldKeyFile)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	db, err := openDatabase(dbPath, openKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			commandHandler.logger.Error("failed to close database ", err)
		}
	}()

	var status int
	switch operation {
	case encryption.OperationSetKey:
		status, err = commandHandler.keyService.SetKey(cmd.Context(), db, key)
	case encryption.OperationReKey:
		status, err = commandHandler.keyService.ReKey(cmd.Context(), db, key)
	}
	if err != nil {
		if errors.Is(err, encryption.ErrNotEnabled) {
			commandHandler.logger.Error(encryption.NotEnabledMessage)
			return
		}
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(operation, " applied to ", dbPath, " with status ", status)
}

// DeriveKeyCmd derives a raw key from a passphrase and prints it hex encoded
func (commandHandler *KeyCommandHandler) DeriveKeyCmd(cmd *cobra.Command, _ []string) {
	passphrase, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		commandHandler.logger.Error("invalid passphrase flag ", err)
		return
	}
	saltHex, err := cmd.Flags().GetString("salt")
	if err != nil {
		commandHandler.logger.Error("invalid salt flag ", err)
		return
	}
	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		commandHandler.logger.Error("invalid iterations flag ", err)
		return
	}

	salt, err := keyutil.Decode(saltHex)
	if err != nil {
		commandHandler.logger.Error("invalid salt: ", err)
		return
	}

	key := keyutil.Derive([]byte(passphrase), salt, iterations)
	commandHandler.logger.Info("Derived key: ", keyutil.Encode(key))
}

// InitKeyCommands registers SQLite key management commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show whether this build supports SQLite encryption",
		Run:   handler.StatusCmd,
	}
	rootCmd.AddCommand(statusCmd)

	var setKeyCmd = &cobra.Command{
		Use:   "set-key",
		Short: "Set the encryption key of a SQLite database",
		Run:   handler.SetKeyCmd,
	}
	setKeyCmd.Flags().StringP("db", "", "", "Path to the SQLite database file")
	setKeyCmd.Flags().StringP("key", "", "", "Hex encoded raw key")
	setKeyCmd.Flags().StringP("key-file", "", "", "Path to a file containing the hex encoded raw key")
	rootCmd.AddCommand(setKeyCmd)

	var reKeyCmd = &cobra.Command{
		Use:   "rekey",
		Short: "Change the encryption key of a keyed SQLite database",
		Run:   handler.ReKeyCmd,
	}
	reKeyCmd.Flags().StringP("db", "", "", "Path to the SQLite database file")
	reKeyCmd.Flags().StringP("key", "", "", "Hex encoded new raw key")
	reKeyCmd.Flags().StringP("key-file", "", "", "Path to a file containing the hex encoded new raw key")
	reKeyCmd.Flags().StringP("old-key", "", "", "Hex encoded current raw key used to open the database")
	reKeyCmd.Flags().StringP("old-key-file", "", "", "Path to a file containing the hex encoded current raw key")
	rootCmd.AddCommand(reKeyCmd)

	var deriveKeyCmd = &cobra.Command{
		Use:   "derive-key",
		Short: "Derive a raw key from a passphrase",
		Run:   handler.DeriveKeyCmd,
	}
	deriveKeyCmd.Flags().StringP("passphrase", "", "", "Passphrase to derive the key from")
	deriveKeyCmd.Flags().StringP("salt", "", "", "Hex encoded salt")
	deriveKeyCmd.Flags().IntP("iterations", "", keyutil.DefaultIterations, "PBKDF2 iteration count")
	rootCmd.AddCommand(deriveKeyCmd)

	return nil
}
