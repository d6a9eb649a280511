package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/boltnotes/bolt-notes/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the collection from JSON on stdin",
		Long:  "Replace the collection from JSON on stdin. Expects the format produced by export.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var collection []model.Note
	if err := json.Unmarshal(data, &collection); err != nil {
		exitErr("parse json", err)
	}

	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	if err := repo.Import(cmd.Context(), collection); err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", len(collection))
}
