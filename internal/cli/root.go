// Package cli implements the bolt-notes CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltnotes/bolt-notes/internal/notes"
	"github.com/boltnotes/bolt-notes/internal/storage"
	"github.com/spf13/cobra"
)

var (
	storeFlag  string
	dataPath   string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "bolt-notes",
	Short: "Personal checklists with an AI assistant",
	Long:  "A tiny checklist manager. Keep titled notes of checkable tasks, or ask the assistant to draft one from a prompt.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&storeFlag, "store", "file", "Backing store: file or sqlite")
	RootCmd.PersistentFlags().StringVarP(&dataPath, "db", "d", "", "Store path (default: $BOLT_NOTES_DB or ~/.bolt-notes/)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getDataPath(filename string) string {
	if dataPath != "" {
		return dataPath
	}
	if env := os.Getenv("BOLT_NOTES_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bolt-notes", filename)
}

func openGateway() (storage.Gateway, error) {
	switch storeFlag {
	case "sqlite":
		return storage.NewSQLiteGateway(getDataPath("notes.db"), storage.DefaultSlot)
	case "file":
		return storage.NewFileGateway(getDataPath("notes.json"))
	default:
		return nil, fmt.Errorf("unknown store %q (use file or sqlite)", storeFlag)
	}
}

func openRepo() (*notes.Repository, storage.Gateway, error) {
	gw, err := openGateway()
	if err != nil {
		return nil, nil, err
	}
	return notes.NewRepository(gw), gw, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
