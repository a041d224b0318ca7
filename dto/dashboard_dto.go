package dto

import "github.com/freelancetrack/lib/stats"

// DashboardStatsResponse bundles every derived number the dashboard renders
type DashboardStatsResponse struct {
	Totals struct {
		Hours    float64 `json:"hours"`
		Earnings float64 `json:"earnings"`
		Projects int     `json:"projects"`
		Logs     int     `json:"logs"`
	} `json:"totals"`

	ProjectHours    []stats.ProjectSlice `json:"projectHours"`
	WeeklyActivity  []stats.DayActivity  `json:"weeklyActivity"`
	TaskStatuses    []stats.StatusCount  `json:"taskStatuses"`
	ProjectStatuses []stats.StatusCount  `json:"projectStatuses"`
}

// RoadmapRow is one bar of the roadmap timeline view
type RoadmapRow struct {
	TaskID      string `json:"taskId"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Start       int64  `json:"start"` // epoch millis
	End         int64  `json:"end"`   // epoch millis
}
