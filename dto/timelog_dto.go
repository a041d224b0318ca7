package dto

import "time"

// CreateTimeLogRequest represents a completed interval being persisted, from
// either a stopped timer or a manual entry. Duration is computed server-side
// from the interval; clients never supply it.
type CreateTimeLogRequest struct {
	ProjectID   string    `json:"projectId" binding:"required"`
	TaskID      *string   `json:"taskId"`
	TaskName    string    `json:"taskName"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Description string    `json:"description"`
}

// UpdateTimeLogRequest represents an edit of an existing time log
type UpdateTimeLogRequest struct {
	ProjectID   string    `json:"projectId" binding:"required"`
	TaskID      *string   `json:"taskId"`
	TaskName    string    `json:"taskName"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Description string    `json:"description"`
}
