// Package stats reduces in-memory project, task and time-log collections into
// the derived numbers the dashboard renders. Every function is pure: inputs
// are never mutated, orphaned records never cause an error, and two calls on
// the same input produce identical output.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/freelancetrack/models"
)

// ProjectSlice is one segment of the hours-by-project distribution.
type ProjectSlice struct {
	Name  string  `json:"name"`
	Hours float64 `json:"value"` // hours, 1 decimal
	Color string  `json:"color"`
}

// DayActivity is one day of the trailing-week activity chart.
type DayActivity struct {
	Day   string  `json:"day"`  // "Sun", "Mon", ...
	Date  string  `json:"date"` // local calendar date, for tooltips
	Hours float64 `json:"hours"`
}

// StatusCount is one bucket of a status breakdown.
type StatusCount struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// RoundHours1 rounds an hour value to one decimal place, the precision every
// chart in the app displays.
func RoundHours1(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// TotalHours sums the duration of all logs, in hours. Orphaned logs (those
// referencing a deleted project) still count here.
func TotalHours(logs []models.TimeLog) float64 {
	var seconds int64
	for _, log := range logs {
		seconds += log.Duration
	}
	return float64(seconds) / 3600
}

// TotalEarnings sums duration x hourly rate across all logs. A log whose
// project is missing contributes zero, never an error.
func TotalEarnings(logs []models.TimeLog, projects []models.Project) float64 {
	rates := make(map[string]float64, len(projects))
	for _, p := range projects {
		rates[p.ID] = p.HourlyRate
	}

	var total float64
	for _, log := range logs {
		rate := rates[log.ProjectID] // missing project -> 0
		total += float64(log.Duration) / 3600 * rate
	}
	return total
}

// ProjectHours builds the hours-by-project distribution. Projects with no
// logged hours are filtered out so the chart never renders empty slices.
// Output is sorted by hours descending; ties keep project input order.
func ProjectHours(projects []models.Project, logs []models.TimeLog) []ProjectSlice {
	seconds := make(map[string]int64, len(projects))
	for _, p := range projects {
		seconds[p.ID] = 0
	}
	for _, log := range logs {
		if _, ok := seconds[log.ProjectID]; ok {
			seconds[log.ProjectID] += log.Duration
		}
	}

	result := make([]ProjectSlice, 0, len(projects))
	for _, p := range projects {
		hours := RoundHours1(float64(seconds[p.ID]) / 3600)
		if hours <= 0 {
			continue
		}
		color := p.Color
		if color == "" {
			color = models.DefaultProjectColor
		}
		result = append(result, ProjectSlice{Name: p.Name, Hours: hours, Color: color})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Hours > result[j].Hours
	})
	return result
}

// WeeklyActivity buckets logged hours into the trailing 7 local calendar days
// ending on now's day. Exactly 7 entries are returned, oldest first, the last
// one being "today". A log lands in the bucket matching the local calendar
// date of its start instant; logs outside the window are dropped.
func WeeklyActivity(logs []models.TimeLog, now time.Time) []DayActivity {
	type bucket struct {
		day     DayActivity
		seconds int64
	}

	buckets := make([]bucket, 0, 7)
	index := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		index[key] = len(buckets)
		buckets = append(buckets, bucket{day: DayActivity{
			Day:  d.Format("Mon"),
			Date: key,
		}})
	}

	for _, log := range logs {
		key := log.StartTime.In(now.Location()).Format("2006-01-02")
		if i, ok := index[key]; ok {
			buckets[i].seconds += log.Duration
		}
	}

	result := make([]DayActivity, 0, 7)
	for _, b := range buckets {
		b.day.Hours = RoundHours1(float64(b.seconds) / 3600)
		result = append(result, b.day)
	}
	return result
}

// TaskStatusCounts categorizes every task into exactly one of the three
// kanban columns, falling back to the legacy isCompleted flag when the status
// field is absent. Zero-count buckets are excluded.
func TaskStatusCounts(tasks []models.Task) []StatusCount {
	var todo, inProgress, done int
	for _, t := range tasks {
		switch t.EffectiveStatus() {
		case models.TaskStatusDone:
			done++
		case models.TaskStatusInProgress:
			inProgress++
		default:
			todo++
		}
	}

	result := make([]StatusCount, 0, 3)
	for _, c := range []StatusCount{
		{Name: string(models.TaskStatusTodo), Count: todo},
		{Name: string(models.TaskStatusInProgress), Count: inProgress},
		{Name: string(models.TaskStatusDone), Count: done},
	} {
		if c.Count > 0 {
			result = append(result, c)
		}
	}
	return result
}

// ProjectStatusCounts splits projects into completed vs active. Every
// non-completed status, archived included, counts as active; this mirrors the
// dashboard's observed behavior. Zero-count buckets are excluded.
func ProjectStatusCounts(projects []models.Project) []StatusCount {
	var active, completed int
	for _, p := range projects {
		if p.Status == models.ProjectStatusCompleted {
			completed++
		} else {
			active++
		}
	}

	result := make([]StatusCount, 0, 2)
	for _, c := range []StatusCount{
		{Name: "active", Count: active},
		{Name: "completed", Count: completed},
	} {
		if c.Count > 0 {
			result = append(result, c)
		}
	}
	return result
}
