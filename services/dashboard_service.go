package services

import (
	"time"

	"github.com/freelancetrack/dto"
	"github.com/freelancetrack/lib/stats"
	"github.com/freelancetrack/repositories"
)

// DashboardService assembles the aggregated dashboard and roadmap views. It
// only reads; all reduction happens in lib/stats over the fetched collections.
type DashboardService struct {
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
	timeLogRepo *repositories.TimeLogRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		projectRepo: repositories.NewProjectRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		timeLogRepo: repositories.NewTimeLogRepository(),
	}
}

// GetStats computes the full dashboard payload for a user
func (s *DashboardService) GetStats(userID string, now time.Time) (dto.DashboardStatsResponse, error) {
	var response dto.DashboardStatsResponse

	projects, err := s.projectRepo.FindByUserID(userID)
	if err != nil {
		return response, err
	}
	logs, err := s.timeLogRepo.FindByUserID(userID)
	if err != nil {
		return response, err
	}
	tasks, err := s.taskRepo.FindByUserID(userID)
	if err != nil {
		return response, err
	}

	response.Totals.Hours = stats.RoundHours1(stats.TotalHours(logs))
	response.Totals.Earnings = stats.TotalEarnings(logs, projects)
	response.Totals.Projects = len(projects)
	response.Totals.Logs = len(logs)

	response.ProjectHours = stats.ProjectHours(projects, logs)
	response.WeeklyActivity = stats.WeeklyActivity(logs, now)
	response.TaskStatuses = stats.TaskStatusCounts(tasks)
	response.ProjectStatuses = stats.ProjectStatusCounts(projects)

	return response, nil
}

// GetRoadmap builds timeline rows for every task that belongs to the user.
// Tasks without an explicit start fall back to their creation time; tasks
// without a due date get a single-day bar.
func (s *DashboardService) GetRoadmap(userID string) ([]dto.RoadmapRow, error) {
	projects, err := s.projectRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	rows := make([]dto.RoadmapRow, 0, len(tasks))
	for _, t := range tasks {
		start := t.CreatedAt.UnixMilli()
		if t.StartDate != nil {
			start = *t.StartDate
		}
		end := start + int64(24*time.Hour/time.Millisecond)
		if t.DueDate != nil && *t.DueDate > start {
			end = *t.DueDate
		}

		rows = append(rows, dto.RoadmapRow{
			TaskID:      t.ID,
			ProjectID:   t.ProjectID,
			ProjectName: names[t.ProjectID], // orphaned task -> empty name
			Name:        t.Name,
			Status:      string(t.EffectiveStatus()),
			Priority:    string(t.Priority),
			Start:       start,
			End:         end,
		})
	}

	return rows, nil
}
