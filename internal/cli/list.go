package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Run:   runList,
	}

	cmd.Flags().Bool("ids-only", false, "Only output note ids and titles")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	collection := repo.List(cmd.Context())

	if idsOnly || formatFlag == "text" {
		for _, n := range collection {
			done := 0
			for _, t := range n.Tasks {
				if t.Completed {
					done++
				}
			}
			fmt.Printf("%s  %s (%d/%d)\n", n.ID, n.Title, done, len(n.Tasks))
		}
		return
	}

	b, _ := json.MarshalIndent(collection, "", "  ")
	fmt.Println(string(b))
}
