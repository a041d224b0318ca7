package kanban

import (
	"testing"

	"github.com/freelancetrack/models"
)

func findTask(t *testing.T, tasks []models.Task, id string) models.Task {
	t.Helper()
	for _, task := range tasks {
		if task.ID == id {
			return task
		}
	}
	t.Fatalf("task %q not found", id)
	return models.Task{}
}

func TestBoard_ApplyMoveIsVisibleImmediately(t *testing.T) {
	b := NewBoard()
	b.Refresh(boardTasks())

	b.ApplyMove("a", models.TaskStatusDone)

	got := findTask(t, b.Tasks(), "a")
	if got.Status != models.TaskStatusDone {
		t.Errorf("pending move not visible: status = %q", got.Status)
	}
	if !got.IsCompleted {
		t.Error("merged view must keep isCompleted in sync with status")
	}
}

func TestBoard_ConfirmPromotesPending(t *testing.T) {
	b := NewBoard()
	b.Refresh(boardTasks())

	b.ApplyMove("a", models.TaskStatusInProgress)
	b.Confirm("a")

	got := findTask(t, b.Tasks(), "a")
	if got.Status != models.TaskStatusInProgress {
		t.Errorf("status = %q, want in-progress", got.Status)
	}

	// A later refresh-free read still sees the confirmed state.
	got = findTask(t, b.Tasks(), "a")
	if got.Status != models.TaskStatusInProgress {
		t.Errorf("confirmed state lost: status = %q", got.Status)
	}
}

func TestBoard_RevertRestoresConfirmedState(t *testing.T) {
	b := NewBoard()
	b.Refresh(boardTasks())

	b.ApplyMove("a", models.TaskStatusDone)
	b.Revert("a")

	got := findTask(t, b.Tasks(), "a")
	if got.Status != models.TaskStatusTodo {
		t.Errorf("status = %q, want todo after revert", got.Status)
	}
	if got.IsCompleted {
		t.Error("isCompleted must be false after revert")
	}
}

func TestBoard_RefreshDropsPendingMoves(t *testing.T) {
	b := NewBoard()
	b.Refresh(boardTasks())
	b.ApplyMove("a", models.TaskStatusDone)

	// Full refetch wins over in-flight moves.
	b.Refresh(boardTasks())

	got := findTask(t, b.Tasks(), "a")
	if got.Status != models.TaskStatusTodo {
		t.Errorf("status = %q, want todo after refresh", got.Status)
	}
}

func TestBoard_TasksReturnsCopy(t *testing.T) {
	b := NewBoard()
	b.Refresh(boardTasks())

	view := b.Tasks()
	view[0].SetStatus(models.TaskStatusDone)

	got := findTask(t, b.Tasks(), "a")
	if got.Status != models.TaskStatusTodo {
		t.Error("mutating the returned slice leaked into the board")
	}
}

func TestBoard_SubscribeSignalsOnChange(t *testing.T) {
	b := NewBoard()
	ch := b.Subscribe()

	b.Refresh(boardTasks())
	select {
	case <-ch:
	default:
		t.Fatal("expected a signal after Refresh")
	}

	b.ApplyMove("a", models.TaskStatusDone)
	select {
	case <-ch:
	default:
		t.Fatal("expected a signal after ApplyMove")
	}

	// Revert of a non-pending task changes nothing and stays silent.
	b.Revert("b")
	select {
	case <-ch:
		t.Fatal("unexpected signal after no-op revert")
	default:
	}
}
