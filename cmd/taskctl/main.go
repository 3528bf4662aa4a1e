// Package main implements taskctl, a terminal client for the task API.
package main

import (
	"os"

	"taskmanager/internal/client"

	"github.com/spf13/cobra"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "taskctl",
	Short: "Manage tasks from the terminal",
}

func init() {
	defaultURL := os.Getenv("API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "base URL of the task API")
}

// newClient builds a client and loads the current collection, since every
// command starts from the server's state.
func newClient(cmd *cobra.Command) (*client.Client, error) {
	c := client.New(apiURL)
	if err := c.FetchTasks(cmd.Context()); err != nil {
		return nil, err
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
