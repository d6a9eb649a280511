package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the full collection as JSON",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	collection := repo.List(cmd.Context())

	b, _ := json.MarshalIndent(collection, "", "  ")
	fmt.Println(string(b))
}
