package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	note, err := repo.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("show", err)
	}

	if formatFlag == "text" {
		fmt.Println(note.Title)
		for _, t := range note.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %s\n", mark, t.ID, t.Text)
		}
		return
	}

	b, _ := json.MarshalIndent(note, "", "  ")
	fmt.Println(string(b))
}
