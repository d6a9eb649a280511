package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	task := &cobra.Command{
		Use:   "task",
		Short: "Operate on a note's tasks",
	}

	add := &cobra.Command{
		Use:   "add [note-id] [text]",
		Short: "Append a task to a note",
		Args:  cobra.MinimumNArgs(2),
		Run:   runTaskAdd,
	}

	rm := &cobra.Command{
		Use:   "rm [note-id] [task-id]",
		Short: "Remove a task from a note",
		Args:  cobra.ExactArgs(2),
		Run:   runTaskRm,
	}

	edit := &cobra.Command{
		Use:   "edit [note-id] [task-id] [text]",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(3),
		Run:   runTaskEdit,
	}

	toggle := &cobra.Command{
		Use:   "toggle [note-id] [task-id]",
		Short: "Check or uncheck a task",
		Args:  cobra.ExactArgs(2),
		Run:   runTaskToggle,
	}

	task.AddCommand(add, rm, edit, toggle)
	RootCmd.AddCommand(task)
}

func runTaskAdd(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	if err := repo.AddTask(cmd.Context(), args[0], strings.Join(args[1:], " ")); err != nil {
		exitErr("task add", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runTaskRm(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	if err := repo.RemoveTask(cmd.Context(), args[0], args[1]); err != nil {
		exitErr("task rm", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runTaskEdit(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	if err := repo.EditTask(cmd.Context(), args[0], args[1], strings.Join(args[2:], " ")); err != nil {
		exitErr("task edit", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runTaskToggle(cmd *cobra.Command, args []string) {
	repo, gw, err := openRepo()
	if err != nil {
		exitErr("open store", err)
	}
	defer gw.Close()

	if err := repo.ToggleTask(cmd.Context(), args[0], args[1]); err != nil {
		exitErr("task toggle", err)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
