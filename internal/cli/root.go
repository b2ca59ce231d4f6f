// Package cli implements the command-line interface for cubeviz.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubeviz/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeviz",
	Short: "Layered-cube scrambler and 3D terminal viewer",
	Long: `cubeviz models an NxNxN twisting cube and renders it as a spinning,
depth-sorted perspective projection in the terminal.

Generate scrambles, inspect cube faces after a move sequence, keep a
history of scramble sessions, and replay them in the interactive viewer.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubeviz/cubeviz.db)")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
