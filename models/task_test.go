package models

import "testing"

func TestTask_SetStatus(t *testing.T) {
	tests := []struct {
		status        TaskStatus
		wantCompleted bool
	}{
		{TaskStatusTodo, false},
		{TaskStatusInProgress, false},
		{TaskStatusDone, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			task := Task{Status: TaskStatusTodo, IsCompleted: false}
			task.SetStatus(tt.status)

			if task.Status != tt.status {
				t.Errorf("Status = %q, want %q", task.Status, tt.status)
			}
			if task.IsCompleted != tt.wantCompleted {
				t.Errorf("IsCompleted = %v, want %v", task.IsCompleted, tt.wantCompleted)
			}
		})
	}
}

func TestTask_SetStatus_ClearsStaleCompleted(t *testing.T) {
	task := Task{}
	task.SetStatus(TaskStatusDone)
	task.SetStatus(TaskStatusInProgress)

	if task.IsCompleted {
		t.Error("IsCompleted should be recomputed to false when leaving done")
	}
}

func TestTask_EffectiveStatus(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want TaskStatus
	}{
		{"explicit todo", Task{Status: TaskStatusTodo}, TaskStatusTodo},
		{"explicit in-progress", Task{Status: TaskStatusInProgress}, TaskStatusInProgress},
		{"explicit done", Task{Status: TaskStatusDone}, TaskStatusDone},
		{"legacy completed without status", Task{IsCompleted: true}, TaskStatusDone},
		{"no status at all", Task{}, TaskStatusTodo},
		{"unknown status falls back to legacy flag", Task{Status: "archived", IsCompleted: true}, TaskStatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.EffectiveStatus(); got != tt.want {
				t.Errorf("EffectiveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProject_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		check   func(t *testing.T, p Project)
	}{
		{
			"negative rate clamped to zero",
			Project{HourlyRate: -50, Status: ProjectStatusActive, Color: "#fff"},
			func(t *testing.T, p Project) {
				if p.HourlyRate != 0 {
					t.Errorf("HourlyRate = %v, want 0", p.HourlyRate)
				}
			},
		},
		{
			"valid rate preserved",
			Project{HourlyRate: 120.5, Status: ProjectStatusCompleted, Color: "#fff"},
			func(t *testing.T, p Project) {
				if p.HourlyRate != 120.5 {
					t.Errorf("HourlyRate = %v, want 120.5", p.HourlyRate)
				}
				if p.Status != ProjectStatusCompleted {
					t.Errorf("Status = %q, want completed", p.Status)
				}
			},
		},
		{
			"unknown status defaults to active",
			Project{Status: "paused"},
			func(t *testing.T, p Project) {
				if p.Status != ProjectStatusActive {
					t.Errorf("Status = %q, want active", p.Status)
				}
			},
		},
		{
			"missing color gets default",
			Project{Status: ProjectStatusActive},
			func(t *testing.T, p Project) {
				if p.Color != DefaultProjectColor {
					t.Errorf("Color = %q, want %q", p.Color, DefaultProjectColor)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.project.Normalize()
			tt.check(t, tt.project)
		})
	}
}
