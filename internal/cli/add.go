package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/boltnotes/bolt-notes/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a note",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringArrayP("task", "t", nil, "Task to include (repeatable)")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	title := strings.Join(args, " ")
	taskTexts, _ := cmd.Flags().GetStringArray("task")

	var tasks []model.Task
	for _, t := range taskTexts {
		t = strings.TrimSpace(t)
		if t != "" {
			tasks = append(tasks, model.NewTask(t))
		}
	}

	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	note := model.NewNote(title, tasks)
	if err := repo.Add(cmd.Context(), note); err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(note)
	fmt.Println(string(b))
}
