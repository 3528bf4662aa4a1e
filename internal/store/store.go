package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"taskmanager/internal/domain"
	"taskmanager/internal/logger"
)

// TaskStore owns the task collection and its on-disk JSON representation.
// Every mutation runs under one lock as read-mutate-persist: the file write
// must succeed before the in-memory collection is swapped, so memory and
// disk cannot diverge after a failed write.
type TaskStore struct {
	mu     sync.RWMutex
	path   string
	tasks  []domain.Task
	nextID int64
}

// Open loads the collection from path, or seeds it when the file does not
// exist. A corrupt or unreadable file is logged and replaced by the seed
// data in memory; the store never fails to open.
func Open(path string) (*TaskStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	s := &TaskStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var tasks []domain.Task
		if jsonErr := json.Unmarshal(data, &tasks); jsonErr != nil {
			logger.Error("task file is corrupt, falling back to seed data", "path", path, "error", jsonErr)
			s.tasks = seedTasks()
		} else {
			s.tasks = tasks
		}
	case os.IsNotExist(err):
		s.tasks = seedTasks()
	default:
		logger.Error("failed to read task file, falling back to seed data", "path", path, "error", err)
		s.tasks = seedTasks()
	}

	s.nextID = maxID(s.tasks) + 1
	return s, nil
}

func seedTasks() []domain.Task {
	now := time.Now().UTC()
	return []domain.Task{
		{ID: 1, Title: "Learn Go", CreatedAt: now},
		{ID: 2, Title: "Build Task Manager", CreatedAt: now},
	}
}

func maxID(tasks []domain.Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// List returns all tasks in insertion order.
func (s *TaskStore) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Create validates and appends a new task. The id is always strictly greater
// than every id previously assigned, even after deletions.
func (s *TaskStore) Create(title string, dueDate *string) (domain.Task, error) {
	title, err := domain.NormalizeTitle(title)
	if err != nil {
		return domain.Task{}, err
	}
	if dueDate != nil {
		if err := domain.ValidateDueDate(*dueDate); err != nil {
			return domain.Task{}, err
		}
		if *dueDate == "" {
			dueDate = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:        s.nextID,
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: time.Now().UTC(),
	}

	staged := make([]domain.Task, len(s.tasks), len(s.tasks)+1)
	copy(staged, s.tasks)
	staged = append(staged, task)

	if err := s.persist(staged); err != nil {
		return domain.Task{}, err
	}

	s.tasks = staged
	s.nextID++
	return task, nil
}

// Update applies the non-nil fields of patch to the task with the given id.
// Setting completed records or clears the completion timestamp.
func (s *TaskStore) Update(id int64, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Task{}, &domain.ValidationError{Reason: "Task title cannot be empty"}
		}
		if len(title) > domain.MaxTitleLen {
			return domain.Task{}, &domain.ValidationError{Reason: fmt.Sprintf("Task title must be at most %d characters", domain.MaxTitleLen)}
		}
		patch.Title = &title
	}
	if patch.DueDate != nil {
		if err := domain.ValidateDueDate(*patch.DueDate); err != nil {
			return domain.Task{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	staged := make([]domain.Task, len(s.tasks))
	copy(staged, s.tasks)

	task := &staged[idx]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			task.DueDate = nil
		} else {
			task.DueDate = patch.DueDate
		}
	}
	if patch.Completed != nil {
		if *patch.Completed {
			if !task.Completed {
				now := time.Now().UTC()
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
		task.Completed = *patch.Completed
	}

	if err := s.persist(staged); err != nil {
		return domain.Task{}, err
	}

	s.tasks = staged
	return staged[idx], nil
}

// Delete removes the task with the given id.
func (s *TaskStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrTaskNotFound
	}

	staged := make([]domain.Task, 0, len(s.tasks)-1)
	staged = append(staged, s.tasks[:idx]...)
	staged = append(staged, s.tasks[idx+1:]...)

	if err := s.persist(staged); err != nil {
		return err
	}

	s.tasks = staged
	return nil
}

// Path returns the backing file path.
func (s *TaskStore) Path() string {
	return s.path
}

// persist rewrites the whole collection. Written to a temp file first and
// renamed into place so a crash mid-write leaves the previous file intact.
func (s *TaskStore) persist(tasks []domain.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Error("failed to write task file", "path", s.path, "error", err)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.Error("failed to replace task file", "path", s.path, "error", err)
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}
