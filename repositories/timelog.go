package repositories

import (
	"github.com/freelancetrack/database"
	"github.com/freelancetrack/models"
)

// TimeLogRepository handles database operations for time logs
type TimeLogRepository struct{}

// NewTimeLogRepository creates a new time log repository instance
func NewTimeLogRepository() *TimeLogRepository {
	return &TimeLogRepository{}
}

// FindByUserID retrieves all time logs belonging to a user, most recent first
func (r *TimeLogRepository) FindByUserID(userID string) ([]models.TimeLog, error) {
	var logs []models.TimeLog
	result := database.DB.Where("user_id = ?", userID).Order("start_time desc").Find(&logs)
	return logs, result.Error
}

// FindByProjectID retrieves all time logs for a project, most recent first
func (r *TimeLogRepository) FindByProjectID(userID, projectID string) ([]models.TimeLog, error) {
	var logs []models.TimeLog
	result := database.DB.
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("start_time desc").
		Find(&logs)
	return logs, result.Error
}

// FindByID retrieves a time log by its ID
func (r *TimeLogRepository) FindByID(id string) (models.TimeLog, error) {
	var log models.TimeLog
	result := database.DB.First(&log, "id = ?", id)
	return log, result.Error
}

// Create inserts a new time log into the database
func (r *TimeLogRepository) Create(log models.TimeLog) (models.TimeLog, error) {
	result := database.DB.Create(&log)
	return log, result.Error
}

// Update modifies an existing time log
func (r *TimeLogRepository) Update(log models.TimeLog) error {
	result := database.DB.Save(&log)
	return result.Error
}

// Delete removes a time log from the database
func (r *TimeLogRepository) Delete(id string) error {
	result := database.DB.Delete(&models.TimeLog{}, "id = ?", id)
	return result.Error
}
