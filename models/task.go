package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// TaskStatus represents a kanban column
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid reports whether the status is one of the three kanban columns.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents task urgency
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// IsValid reports whether the priority is a known level.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// SubTaskStatus represents the state of a checklist item
type SubTaskStatus string

const (
	SubTaskStatusActive    SubTaskStatus = "active"
	SubTaskStatusCompleted SubTaskStatus = "completed"
)

// SubTask is a checklist item embedded in its parent task. SubTasks have no
// independent lifecycle; the whole list is replaced on every write.
type SubTask struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Status SubTaskStatus `json:"status"`
}

// SubTaskList custom type for JSON storage of the embedded checklist
type SubTaskList []SubTask

func (l SubTaskList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]SubTask{})
	}
	return json.Marshal(l)
}

func (l *SubTaskList) Scan(value interface{}) error {
	if value == nil {
		*l = SubTaskList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}

// Task represents a unit of work on a project's kanban board
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string       `json:"userId" gorm:"type:uuid;not null;index:idx_tasks_user_project"`
	ProjectID   string       `json:"projectId" gorm:"type:uuid;not null;index:idx_tasks_user_project"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description" gorm:"default:null"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);default:'todo'"`
	// IsCompleted is a legacy field kept for backward compatibility. It is
	// always recomputed from Status via SetStatus, never set directly.
	IsCompleted bool         `json:"isCompleted" gorm:"default:false"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(10);default:'medium'"`
	DueDate     *int64       `json:"dueDate" gorm:"default:null"`   // epoch millis
	StartDate   *int64       `json:"startDate" gorm:"default:null"` // epoch millis
	SubTasks    SubTaskList  `json:"subTasks" gorm:"type:jsonb;default:'[]'"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SetStatus changes the task status and keeps the legacy IsCompleted field in
// sync. All status-changing writes must go through here.
func (t *Task) SetStatus(status TaskStatus) {
	t.Status = status
	t.IsCompleted = status == TaskStatusDone
}

// EffectiveStatus resolves the task's kanban column, falling back to the
// legacy IsCompleted flag for records written before Status existed.
func (t *Task) EffectiveStatus() TaskStatus {
	if t.Status.IsValid() {
		return t.Status
	}
	if t.IsCompleted {
		return TaskStatusDone
	}
	return TaskStatusTodo
}
