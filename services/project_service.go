package services

import (
	"fmt"

	"github.com/freelancetrack/dto"
	"github.com/freelancetrack/models"
	"github.com/freelancetrack/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListProjects retrieves all of a user's projects, newest first
func (s *ProjectService) ListProjects(userID string) ([]models.Project, error) {
	return s.projectRepo.FindByUserID(userID)
}

// GetProject retrieves a project by ID, enforcing ownership
func (s *ProjectService) GetProject(projectID, userID string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if project.UserID != userID {
		return models.Project{}, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}

	return project, nil
}

// CreateProject creates a new project for a user
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		UserID:     userID,
		Name:       req.Name,
		Client:     req.Client,
		HourlyRate: req.HourlyRate,
		Status:     models.ProjectStatus(req.Status),
		Color:      req.Color,
	}
	project.Normalize()

	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project's mutable fields
func (s *ProjectService) UpdateProject(projectID, userID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.GetProject(projectID, userID)
	if err != nil {
		return models.Project{}, err
	}

	project.Name = req.Name
	project.Client = req.Client
	project.HourlyRate = req.HourlyRate
	project.Status = models.ProjectStatus(req.Status)
	project.Color = req.Color
	project.Normalize()

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject deletes a project. Tasks and time logs referencing it are not
// cascaded; downstream consumers tolerate the orphans.
func (s *ProjectService) DeleteProject(projectID, userID string) error {
	if _, err := s.GetProject(projectID, userID); err != nil {
		return err
	}
	return s.projectRepo.Delete(projectID)
}
