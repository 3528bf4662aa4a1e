package client

import (
	"testing"
	"time"

	"taskmanager/internal/domain"
)

func task(id int64, completed bool) domain.Task {
	return domain.Task{ID: id, Title: "t", Completed: completed}
}

func TestFilterTasks(t *testing.T) {
	tasks := []domain.Task{task(1, true), task(2, false), task(3, true)}

	completed := FilterTasks(tasks, FilterCompleted)
	if len(completed) != 2 || completed[0].ID != 1 || completed[1].ID != 3 {
		t.Fatalf("completed filter wrong: %+v", completed)
	}

	pending := FilterTasks(tasks, FilterPending)
	if len(pending) != 1 || pending[0].ID != 2 {
		t.Fatalf("pending filter wrong: %+v", pending)
	}

	all := FilterTasks(tasks, FilterAll)
	if len(all) != 3 || all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 3 {
		t.Fatalf("all filter must preserve order: %+v", all)
	}
}

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		total, completed, want int
	}{
		{0, 0, 0},
		{3, 1, 33},
		{4, 2, 50},
		{3, 2, 67},
		{5, 5, 100},
	}

	for _, tc := range cases {
		tasks := make([]domain.Task, 0, tc.total)
		for i := 0; i < tc.total; i++ {
			tasks = append(tasks, task(int64(i+1), i < tc.completed))
		}
		s := Summarize(tasks)
		if s.CompletionRate != tc.want {
			t.Errorf("%d/%d: expected rate %d, got %d", tc.completed, tc.total, tc.want, s.CompletionRate)
		}
		if s.Pending != tc.total-tc.completed {
			t.Errorf("%d/%d: wrong pending count %d", tc.completed, tc.total, s.Pending)
		}
	}
}

func TestCompletedTodayIsDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	tasks := []domain.Task{
		{ID: 1, Completed: true, CreatedAt: yesterday, CompletedAt: &now},
		{ID: 2, Completed: true, CreatedAt: yesterday, CompletedAt: &yesterday},
		// no completedAt: attributed to creation day
		{ID: 3, Completed: true, CreatedAt: now},
		{ID: 4, Completed: false, CreatedAt: now},
	}

	if got := CompletedToday(tasks, now); got != 2 {
		t.Fatalf("expected 2 completed today, got %d", got)
	}

	// same input, same answer
	if CompletedToday(tasks, now) != CompletedToday(tasks, now) {
		t.Fatal("completed-today must be deterministic")
	}
}

func TestWeeklyStats(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	twoDaysAgo := now.AddDate(0, 0, -2)
	lastMonth := now.AddDate(0, -1, 0)

	completedTwoDaysAgo := twoDaysAgo
	tasks := []domain.Task{
		{ID: 1, CreatedAt: twoDaysAgo, Completed: true, CompletedAt: &completedTwoDaysAgo},
		{ID: 2, CreatedAt: now},
		{ID: 3, CreatedAt: lastMonth},
	}

	week := WeeklyStats(tasks, now)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if !week[6].IsToday {
		t.Fatal("last bucket must be today")
	}
	if week[6].Created != 1 {
		t.Fatalf("expected 1 task created today, got %d", week[6].Created)
	}
	if week[4].Created != 1 || week[4].Completed != 1 {
		t.Fatalf("expected the two-days-ago bucket to hold 1/1, got %d/%d", week[4].Completed, week[4].Created)
	}
	for i, day := range week[:6] {
		if day.IsToday {
			t.Fatalf("bucket %d wrongly marked today", i)
		}
	}
}

func TestRecentTasks(t *testing.T) {
	tasks := []domain.Task{task(1, false), task(2, false), task(3, false), task(4, false)}

	recent := RecentTasks(tasks, 3)
	if len(recent) != 3 || recent[0].ID != 4 || recent[1].ID != 3 || recent[2].ID != 2 {
		t.Fatalf("expected newest-first [4 3 2], got %+v", recent)
	}

	if got := RecentTasks(tasks[:1], 3); len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got := RecentTasks(nil, 3); len(got) != 0 {
		t.Fatalf("expected no tasks, got %d", len(got))
	}
}
