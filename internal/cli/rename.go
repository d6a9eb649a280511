package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rename [id] [title]",
		Short: "Rename a note",
		Args:  cobra.MinimumNArgs(2),
		Run:   runRename,
	}

	RootCmd.AddCommand(cmd)
}

func runRename(cmd *cobra.Command, args []string) {
	id := args[0]
	title := strings.Join(args[1:], " ")

	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	if err := repo.Rename(cmd.Context(), id, title); err != nil {
		exitErr("rename", err)
	}

	fmt.Printf(`{"ok":true,"id":%q,"title":%q}`+"\n", id, title)
}
