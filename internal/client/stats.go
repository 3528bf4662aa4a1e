package client

import (
	"math"
	"time"

	"taskmanager/internal/domain"
)

// Filter selects a subset of the collection for display.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Stats are the aggregate counters shown on the dashboard.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int
}

// DayStat is one bar of the weekly productivity chart.
type DayStat struct {
	Day       string
	Date      time.Time
	Created   int
	Completed int
	IsToday   bool
}

// FilterTasks returns the tasks matching f, preserving relative order.
func FilterTasks(tasks []domain.Task, f Filter) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterCompleted:
			if t.Completed {
				out = append(out, t)
			}
		case FilterPending:
			if !t.Completed {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

// Summarize computes total/completed/pending counts and the completion rate
// as a rounded percentage (0 when there are no tasks).
func Summarize(tasks []domain.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}

// completionDay is the calendar day a completed task is attributed to: its
// completion timestamp, or its creation date when completedAt is missing
// (older exports lack it). Never random, always the same answer.
func completionDay(t domain.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.CreatedAt
}

// CompletedToday counts completed tasks attributed to the same calendar day
// as now.
func CompletedToday(tasks []domain.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.Completed && sameDay(completionDay(t), now) {
			count++
		}
	}
	return count
}

// WeeklyStats buckets the last seven days (oldest first, today last) by
// tasks created and tasks completed on each day.
func WeeklyStats(tasks []domain.Task, now time.Time) []DayStat {
	out := make([]DayStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		ds := DayStat{
			Day:     day.Weekday().String()[:3],
			Date:    day,
			IsToday: i == 0,
		}
		for _, t := range tasks {
			if sameDay(t.CreatedAt, day) {
				ds.Created++
			}
			if t.Completed && sameDay(completionDay(t), day) {
				ds.Completed++
			}
		}
		out = append(out, ds)
	}
	return out
}

// RecentTasks returns up to n of the newest tasks, newest first.
func RecentTasks(tasks []domain.Task, n int) []domain.Task {
	if n > len(tasks) {
		n = len(tasks)
	}
	out := make([]domain.Task, 0, n)
	for i := len(tasks) - 1; i >= len(tasks)-n; i-- {
		out = append(out, tasks[i])
	}
	return out
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Derived views over the client's cache.

func (c *Client) Filtered(f Filter) []domain.Task { return FilterTasks(c.Tasks(), f) }
func (c *Client) Stats() Stats                    { return Summarize(c.Tasks()) }
func (c *Client) CompletedToday() int             { return CompletedToday(c.Tasks(), time.Now()) }
func (c *Client) Weekly() []DayStat               { return WeeklyStats(c.Tasks(), time.Now()) }
func (c *Client) Recent(n int) []domain.Task      { return RecentTasks(c.Tasks(), n) }
