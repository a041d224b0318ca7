package services

import (
	"fmt"

	"github.com/freelancetrack/dto"
	"github.com/freelancetrack/models"
	"github.com/freelancetrack/repositories"
)

// TimeLogService handles business logic for time logs. All intervals are
// validated before any write: a log whose end is not after its start is
// rejected with models.ErrInvalidInterval and never reaches the store.
type TimeLogService struct {
	timeLogRepo *repositories.TimeLogRepository
}

// NewTimeLogService creates a new time log service instance
func NewTimeLogService() *TimeLogService {
	return &TimeLogService{
		timeLogRepo: repositories.NewTimeLogRepository(),
	}
}

// ListTimeLogs retrieves a user's time logs, most recent first
func (s *TimeLogService) ListTimeLogs(userID string) ([]models.TimeLog, error) {
	return s.timeLogRepo.FindByUserID(userID)
}

// CreateTimeLog validates and persists a completed interval
func (s *TimeLogService) CreateTimeLog(userID string, req dto.CreateTimeLogRequest) (models.TimeLog, error) {
	duration, err := models.ComputeDuration(req.StartTime, req.EndTime)
	if err != nil {
		return models.TimeLog{}, err
	}

	log := models.TimeLog{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		TaskName:    req.TaskName,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
		Description: req.Description,
	}

	return s.timeLogRepo.Create(log)
}

// UpdateTimeLog validates and rewrites an existing log's fields
func (s *TimeLogService) UpdateTimeLog(logID, userID string, req dto.UpdateTimeLogRequest) (models.TimeLog, error) {
	log, err := s.timeLogRepo.FindByID(logID)
	if err != nil {
		return models.TimeLog{}, err
	}
	if log.UserID != userID {
		return models.TimeLog{}, fmt.Errorf("time log not found")
	}

	duration, err := models.ComputeDuration(req.StartTime, req.EndTime)
	if err != nil {
		return models.TimeLog{}, err
	}

	log.ProjectID = req.ProjectID
	log.TaskID = req.TaskID
	log.TaskName = req.TaskName
	log.StartTime = req.StartTime
	log.EndTime = req.EndTime
	log.Duration = duration
	log.Description = req.Description

	if err := s.timeLogRepo.Update(log); err != nil {
		return models.TimeLog{}, err
	}

	return log, nil
}

// DeleteTimeLog removes a time log
func (s *TimeLogService) DeleteTimeLog(logID, userID string) error {
	log, err := s.timeLogRepo.FindByID(logID)
	if err != nil {
		return err
	}
	if log.UserID != userID {
		return fmt.Errorf("time log not found")
	}
	return s.timeLogRepo.Delete(logID)
}
