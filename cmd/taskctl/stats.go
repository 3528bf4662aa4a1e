package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show productivity metrics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	s := c.Stats()
	fmt.Printf("total:           %d\n", s.Total)
	fmt.Printf("completed:       %d\n", s.Completed)
	fmt.Printf("pending:         %d\n", s.Pending)
	fmt.Printf("completion rate: %d%%\n", s.CompletionRate)
	fmt.Printf("completed today: %d\n", c.CompletedToday())

	fmt.Println("\nlast 7 days (completed/created):")
	for _, day := range c.Weekly() {
		label := day.Day
		if day.IsToday {
			label += " (today)"
		}
		bar := strings.Repeat("#", day.Completed)
		fmt.Printf("  %-12s %d/%d %s\n", label, day.Completed, day.Created, bar)
	}
	return nil
}
