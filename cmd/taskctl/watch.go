package main

import (
	"fmt"
	"strings"

	"taskmanager/internal/ws"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live task events from the server",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	wsURL := strings.Replace(apiURL, "http", "ws", 1) + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer conn.Close()

	fmt.Println("watching for task events (ctrl-c to stop)")
	for {
		var ev ws.Event
		if err := conn.ReadJSON(&ev); err != nil {
			return err
		}

		switch ev.Type {
		case ws.EventTaskDeleted:
			fmt.Printf("%s  task %d\n", ev.Type, ev.ID)
		default:
			if ev.Task != nil {
				fmt.Printf("%s  task %d: %s\n", ev.Type, ev.Task.ID, ev.Task.Title)
			}
		}
	}
}
