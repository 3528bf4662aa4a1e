package ws

import "taskmanager/internal/domain"

type EventType string

const (
	EventTaskCreated EventType = "created"
	EventTaskUpdated EventType = "updated"
	EventTaskDeleted EventType = "deleted"
)

// Event is a single task change pushed to connected clients.
type Event struct {
	Type EventType    `json:"type"`
	Task *domain.Task `json:"task,omitempty"`
	ID   int64        `json:"id,omitempty"`
}

func TaskCreated(t domain.Task) Event { return Event{Type: EventTaskCreated, Task: &t, ID: t.ID} }
func TaskUpdated(t domain.Task) Event { return Event{Type: EventTaskUpdated, Task: &t, ID: t.ID} }
func TaskDeleted(id int64) Event      { return Event{Type: EventTaskDeleted, ID: id} }
