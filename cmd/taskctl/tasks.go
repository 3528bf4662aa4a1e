package main

import (
	"fmt"
	"strconv"

	"taskmanager/internal/client"

	"github.com/spf13/cobra"
)

var (
	listFilter string
	addDueDate string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completed state",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "all, pending or completed")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "due date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd, addCmd, doneCmd, rmCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	tasks := c.Filtered(client.Filter(listFilter))
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %4d  %s", mark, t.ID, t.Title)
		if t.DueDate != nil {
			line += "  (due " + *t.DueDate + ")"
		}
		fmt.Println(line)
	}

	s := c.Stats()
	fmt.Printf("%d of %d tasks completed\n", s.Completed, s.Total)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	var due *string
	if addDueDate != "" {
		due = &addDueDate
	}

	task, err := c.AddTask(cmd.Context(), args[0], due)
	if err != nil {
		return err
	}
	fmt.Printf("added task %d: %s\n", task.ID, task.Title)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id: %s", args[0])
	}

	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	task, err := c.ToggleTask(cmd.Context(), id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("no task with id %d", id)
	}

	state := "pending"
	if task.Completed {
		state = "completed"
	}
	fmt.Printf("task %d is now %s\n", task.ID, state)
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id: %s", args[0])
	}

	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	if err := c.DeleteTask(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("deleted task %d\n", id)
	return nil
}
