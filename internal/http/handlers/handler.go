package handlers

import (
	"taskmanager/internal/store"
	"taskmanager/internal/ws"
)

// Handler carries the dependencies shared by the task endpoints.
type Handler struct {
	Store *store.TaskStore
	Hub   *ws.Hub
}

func New(st *store.TaskStore, hub *ws.Hub) *Handler {
	return &Handler{Store: st, Hub: hub}
}
