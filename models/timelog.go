package models

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when a time log's end is not after its start.
var ErrInvalidInterval = errors.New("end time must be after start time")

// TimeLog represents a completed time interval attributed to a project.
// Only finished intervals are persisted; a running timer lives client-side
// until stopped.
type TimeLog struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string    `json:"userId" gorm:"type:uuid;not null;index"`
	ProjectID   string    `json:"projectId" gorm:"type:uuid;not null;index"`
	TaskID      *string   `json:"taskId" gorm:"type:uuid;default:null"`
	TaskName    string    `json:"taskName" gorm:"default:null"` // denormalized for display
	StartTime   time.Time `json:"startTime" gorm:"not null;index"`
	EndTime     time.Time `json:"endTime" gorm:"not null"`
	Duration    int64     `json:"duration" gorm:"not null"` // seconds
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ComputeDuration returns the whole seconds between start and end, or
// ErrInvalidInterval when end is not strictly after start.
func ComputeDuration(start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, ErrInvalidInterval
	}
	seconds := int64(end.Sub(start) / time.Second)
	if seconds <= 0 {
		return 0, ErrInvalidInterval
	}
	return seconds, nil
}
