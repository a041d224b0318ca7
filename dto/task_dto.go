package dto

// CreateTaskRequest represents the request payload for creating a task.
// Status may name the kanban column the task was quick-added from; it
// defaults to todo.
type CreateTaskRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     *int64 `json:"dueDate"`
	StartDate   *int64 `json:"startDate"`
}

// UpdateTaskRequest represents the full-field edit of a task via the modal.
// Status is intentionally absent: status only changes through the move
// endpoint's drop resolution.
type UpdateTaskRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	DueDate     *int64           `json:"dueDate"`
	StartDate   *int64           `json:"startDate"`
	SubTasks    []SubTaskRequest `json:"subTasks"`
}

// MoveTaskRequest represents the end of a drag gesture: the drop target is
// either a column id or another task's id.
type MoveTaskRequest struct {
	TargetID string `json:"targetId" binding:"required"`
}

// SubTaskRequest represents one checklist item in a wholesale replace
type SubTaskRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" binding:"required"`
	Status string `json:"status"`
}

// ReplaceSubTasksRequest replaces a task's whole checklist in one write
type ReplaceSubTasksRequest struct {
	SubTasks []SubTaskRequest `json:"subTasks"`
}
