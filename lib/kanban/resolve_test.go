package kanban

import (
	"testing"

	"github.com/freelancetrack/models"
)

func boardTasks() []models.Task {
	return []models.Task{
		{ID: "a", Status: models.TaskStatusTodo},
		{ID: "b", Status: models.TaskStatusInProgress},
		{ID: "c", Status: models.TaskStatusDone},
	}
}

func TestResolveDrop(t *testing.T) {
	tests := []struct {
		name     string
		dragged  string
		target   string
		want     models.TaskStatus
		wantMove bool
	}{
		{"drop on done column", "a", "done", models.TaskStatusDone, true},
		{"drop on in-progress card", "a", "b", models.TaskStatusInProgress, true},
		{"drop on own column is a no-op", "a", "todo", "", false},
		{"drop on card in same column is a no-op", "a", "a", "", false},
		{"drop on unknown target is a no-op", "a", "nope", "", false},
		{"unknown dragged task is a no-op", "nope", "done", "", false},
		{"done back to todo", "c", "todo", models.TaskStatusTodo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDrop(boardTasks(), tt.dragged, tt.target)
			if ok != tt.wantMove {
				t.Fatalf("ok = %v, want %v", ok, tt.wantMove)
			}
			if ok && got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDrop_LegacyStatusFallback(t *testing.T) {
	tasks := []models.Task{
		{ID: "legacy", IsCompleted: true}, // no status field, reads as done
		{ID: "b", Status: models.TaskStatusTodo},
	}

	status, ok := ResolveDrop(tasks, "b", "legacy")
	if !ok || status != models.TaskStatusDone {
		t.Errorf("ResolveDrop() = %q, %v; want done, true", status, ok)
	}
}
