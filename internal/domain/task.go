package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxTitleLen is the longest accepted task title after trimming.
const MaxTitleLen = 200

// DueDateLayout is the accepted due date format.
const DueDateLayout = "2006-01-02"

// ErrTaskNotFound is returned when an operation references an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError marks client-caused input errors (blank title, bad due date).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Task is the persisted unit of work.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	DueDate     *string    `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	DueDate   *string `json:"dueDate"`
}

// NormalizeTitle trims and validates a task title.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", &ValidationError{Reason: "Task title is required"}
	}
	if len(title) > MaxTitleLen {
		return "", &ValidationError{Reason: fmt.Sprintf("Task title must be at most %d characters", MaxTitleLen)}
	}
	return title, nil
}

// ValidateDueDate checks the YYYY-MM-DD format. An empty string is treated as unset.
func ValidateDueDate(dueDate string) error {
	if dueDate == "" {
		return nil
	}
	if _, err := time.Parse(DueDateLayout, dueDate); err != nil {
		return &ValidationError{Reason: "Due date must use YYYY-MM-DD format"}
	}
	return nil
}
