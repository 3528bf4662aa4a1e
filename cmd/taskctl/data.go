package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"taskmanager/internal/client"

	"github.com/spf13/cobra"
)

var clearYes bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all tasks to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create tasks from an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(exportCmd, importCmd, clearCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	data, err := c.Export()
	if err != nil {
		return err
	}

	path := fmt.Sprintf("tasks-%s.json", time.Now().Format("2006-01-02"))
	if len(args) > 0 {
		path = args[0]
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("exported %d tasks to %s\n", len(c.Tasks()), path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var items []client.ImportedTask
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("invalid file format: %w", err)
	}

	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	if err := c.ImportTasks(cmd.Context(), items); err != nil {
		return err
	}
	fmt.Printf("imported %d tasks\n", len(items))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	total := len(c.Tasks())
	if total == 0 {
		fmt.Println("no tasks to clear")
		return nil
	}

	if !clearYes {
		fmt.Printf("this will permanently delete all %d tasks; re-run with --yes to confirm\n", total)
		return nil
	}

	if err := c.ClearAllTasks(cmd.Context()); err != nil {
		return err
	}
	fmt.Printf("cleared %d tasks\n", total)
	return nil
}
