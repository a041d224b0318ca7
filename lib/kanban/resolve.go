// Package kanban implements the task-status state machine behind the board:
// resolving a drag-and-drop target to a new status, and an in-memory board
// cache that tracks optimistic moves until the backing write is confirmed.
package kanban

import (
	"github.com/freelancetrack/models"
)

// Columns lists the board columns in display order. Column ids double as
// task statuses.
var Columns = []models.TaskStatus{
	models.TaskStatusTodo,
	models.TaskStatusInProgress,
	models.TaskStatusDone,
}

// ResolveDrop determines the status a dragged task should take given the drop
// target. A target that is a column id resolves to that column; a target that
// is another task's id resolves to that task's current status. It returns
// ok=false when the target is unknown or when the resolved status equals the
// dragged task's current status (a no-op drop, not an error).
func ResolveDrop(tasks []models.Task, draggedID, targetID string) (models.TaskStatus, bool) {
	var dragged *models.Task
	for i := range tasks {
		if tasks[i].ID == draggedID {
			dragged = &tasks[i]
			break
		}
	}
	if dragged == nil {
		return "", false
	}

	newStatus := dragged.EffectiveStatus()

	// 1. Dropped directly on a column
	if s := models.TaskStatus(targetID); s.IsValid() {
		newStatus = s
	} else {
		// 2. Dropped on another card
		found := false
		for i := range tasks {
			if tasks[i].ID == targetID {
				newStatus = tasks[i].EffectiveStatus()
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}

	if newStatus == dragged.EffectiveStatus() {
		return "", false
	}
	return newStatus, true
}
