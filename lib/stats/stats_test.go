package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/freelancetrack/models"
)

func TestTotalHoursAndEarnings(t *testing.T) {
	logs := []models.TimeLog{
		{ProjectID: "p1", Duration: 3600},
		{ProjectID: "p2", Duration: 1800},
	}
	projects := []models.Project{
		{ID: "p1", HourlyRate: 100},
		{ID: "p2", HourlyRate: 50},
	}

	if got := TotalHours(logs); got != 1.5 {
		t.Errorf("TotalHours() = %v, want 1.5", got)
	}
	if got := TotalEarnings(logs, projects); got != 125 {
		t.Errorf("TotalEarnings() = %v, want 125", got)
	}
}

func TestOrphanedLogsContributeZeroEarnings(t *testing.T) {
	logs := []models.TimeLog{
		{ProjectID: "p1", Duration: 3600},
		{ProjectID: "deleted", Duration: 7200},
	}
	projects := []models.Project{{ID: "p1", HourlyRate: 100}}

	// Orphans still count toward hours but earn nothing.
	if got := TotalHours(logs); got != 3 {
		t.Errorf("TotalHours() = %v, want 3", got)
	}
	if got := TotalEarnings(logs, projects); got != 100 {
		t.Errorf("TotalEarnings() = %v, want 100", got)
	}
}

func TestProjectHours(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Alpha", Color: "#111"},
		{ID: "p2", Name: "Beta", Color: "#222"},
		{ID: "p3", Name: "Idle", Color: "#333"},
	}
	logs := []models.TimeLog{
		{ProjectID: "p1", Duration: 1800},
		{ProjectID: "p2", Duration: 7200},
		{ProjectID: "orphan", Duration: 3600},
	}

	got := ProjectHours(projects, logs)
	want := []ProjectSlice{
		{Name: "Beta", Hours: 2, Color: "#222"},
		{Name: "Alpha", Hours: 0.5, Color: "#111"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectHours() = %+v, want %+v", got, want)
	}
}

func TestProjectHours_FiltersZeroAndDefaultsColor(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "NoColor"},
		{ID: "p2", Name: "Idle"},
	}
	logs := []models.TimeLog{{ProjectID: "p1", Duration: 3600}}

	got := ProjectHours(projects, logs)
	if len(got) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(got))
	}
	if got[0].Color != models.DefaultProjectColor {
		t.Errorf("Color = %q, want default %q", got[0].Color, models.DefaultProjectColor)
	}
}

func TestProjectHours_TiesKeepInputOrder(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "First", Color: "#1"},
		{ID: "p2", Name: "Second", Color: "#2"},
	}
	logs := []models.TimeLog{
		{ProjectID: "p1", Duration: 3600},
		{ProjectID: "p2", Duration: 3600},
	}

	got := ProjectHours(projects, logs)
	if got[0].Name != "First" || got[1].Name != "Second" {
		t.Errorf("tie order not stable: %+v", got)
	}
}

func TestWeeklyActivity(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC) // a Saturday

	logs := []models.TimeLog{
		{StartTime: now.Add(-2 * time.Hour), Duration: 5400}, // today, 1.5h
		{StartTime: time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC), Duration: 3600}, // oldest bucket day
		{StartTime: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), Duration: 9999}, // outside window, dropped
		{StartTime: time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC), Duration: 9999}, // tomorrow, dropped
	}

	got := WeeklyActivity(logs, now)

	if len(got) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(got))
	}
	if got[0].Date != "2025-03-09" || got[6].Date != "2025-03-15" {
		t.Errorf("window = %s .. %s, want 2025-03-09 .. 2025-03-15", got[0].Date, got[6].Date)
	}
	if got[0].Day != "Sun" || got[6].Day != "Sat" {
		t.Errorf("day labels = %s .. %s, want Sun .. Sat", got[0].Day, got[6].Day)
	}
	if got[0].Hours != 1 {
		t.Errorf("oldest bucket hours = %v, want 1", got[0].Hours)
	}
	if got[6].Hours != 1.5 {
		t.Errorf("today hours = %v, want 1.5", got[6].Hours)
	}
	for i := 1; i < 6; i++ {
		if got[i].Hours != 0 {
			t.Errorf("bucket %d hours = %v, want 0", i, got[i].Hours)
		}
	}
}

func TestWeeklyActivity_EmptyLogs(t *testing.T) {
	got := WeeklyActivity(nil, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	if len(got) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(got))
	}
	for _, d := range got {
		if d.Hours != 0 {
			t.Errorf("bucket %s hours = %v, want 0", d.Date, d.Hours)
		}
	}
}

func TestTaskStatusCounts(t *testing.T) {
	tasks := []models.Task{
		{Status: models.TaskStatusTodo},
		{Status: models.TaskStatusTodo},
		{Status: models.TaskStatusInProgress},
		{Status: models.TaskStatusDone},
		{IsCompleted: true}, // legacy record, no status
		{}, // neither field -> todo
	}

	got := TaskStatusCounts(tasks)

	total := 0
	byName := make(map[string]int)
	for _, c := range got {
		total += c.Count
		byName[c.Name] = c.Count
	}

	// Every task lands in exactly one bucket.
	if total != len(tasks) {
		t.Errorf("bucket sum = %d, want %d", total, len(tasks))
	}
	if byName["todo"] != 3 || byName["in-progress"] != 1 || byName["done"] != 2 {
		t.Errorf("counts = %v, want todo:3 in-progress:1 done:2", byName)
	}
}

func TestTaskStatusCounts_ExcludesEmptyBuckets(t *testing.T) {
	tasks := []models.Task{{Status: models.TaskStatusDone}}

	got := TaskStatusCounts(tasks)
	if len(got) != 1 || got[0].Name != "done" {
		t.Errorf("TaskStatusCounts() = %+v, want only done", got)
	}
}

func TestProjectStatusCounts(t *testing.T) {
	projects := []models.Project{
		{Status: models.ProjectStatusActive},
		{Status: models.ProjectStatusArchived}, // counts as active
		{Status: models.ProjectStatusCompleted},
	}

	got := ProjectStatusCounts(projects)
	want := []StatusCount{
		{Name: "active", Count: 2},
		{Name: "completed", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectStatusCounts() = %+v, want %+v", got, want)
	}
}

func TestAggregationIsIdempotentAndNonMutating(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	projects := []models.Project{
		{ID: "p1", Name: "Alpha", Color: "#111", HourlyRate: 80},
		{ID: "p2", Name: "Beta", Color: "#222", HourlyRate: 40},
	}
	logs := []models.TimeLog{
		{ProjectID: "p2", Duration: 7200, StartTime: now.Add(-time.Hour)},
		{ProjectID: "p1", Duration: 1800, StartTime: now.Add(-26 * time.Hour)},
	}

	projectsCopy := make([]models.Project, len(projects))
	copy(projectsCopy, projects)
	logsCopy := make([]models.TimeLog, len(logs))
	copy(logsCopy, logs)

	first := ProjectHours(projects, logs)
	second := ProjectHours(projects, logs)
	if !reflect.DeepEqual(first, second) {
		t.Error("ProjectHours is not idempotent")
	}

	weekly1 := WeeklyActivity(logs, now)
	weekly2 := WeeklyActivity(logs, now)
	if !reflect.DeepEqual(weekly1, weekly2) {
		t.Error("WeeklyActivity is not idempotent")
	}

	if !reflect.DeepEqual(projects, projectsCopy) {
		t.Error("projects were mutated")
	}
	if !reflect.DeepEqual(logs, logsCopy) {
		t.Error("logs were mutated")
	}
}
