package models

import (
	"time"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValid reports whether the status is one of the known project states.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// DefaultProjectColor is used when a project has no display color set.
const DefaultProjectColor = "#3f51b5"

// Project represents a billable client engagement
type Project struct {
	ID         string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string        `json:"userId" gorm:"type:uuid;not null;index"`
	Name       string        `json:"name" gorm:"not null"`
	Client     string        `json:"client" gorm:"default:null"`
	HourlyRate float64       `json:"hourlyRate" gorm:"default:0"`
	Status     ProjectStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	Color      string        `json:"color" gorm:"default:null"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// Normalize clamps and defaults fields that must hold regardless of input.
// Hourly rate is never negative, unknown statuses fall back to active, and a
// missing color gets the default display tag.
func (p *Project) Normalize() {
	if p.HourlyRate < 0 {
		p.HourlyRate = 0
	}
	if !p.Status.IsValid() {
		p.Status = ProjectStatusActive
	}
	if p.Color == "" {
		p.Color = DefaultProjectColor
	}
}
