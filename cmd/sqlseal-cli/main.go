// Package main is the entry point for the sqlseal-cli application.
// It initializes the root command, registers the key-management sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/sealkit/sqlseal/cmd/sqlseal-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "sqlseal-cli",
		Short: "SQLite encryption key management CLI tool",
		Long: `sqlseal-cli manages encryption keys of SQLite databases.
Supports setting an initial key, changing an existing key and deriving raw
keys from passphrases.

Key operations require a build that carries an encryption codec
(build with -tags sqlcipher); in plain builds they fail with a fixed
"not enabled" error. Use the status command to check the capability of
this binary.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	return nil
}
