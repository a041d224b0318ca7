package repositories

import (
	"github.com/freelancetrack/database"
	"github.com/freelancetrack/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByUserID retrieves all projects belonging to a user, newest first
func (r *ProjectRepository) FindByUserID(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project from the database. There is no cascade: tasks and
// time logs referencing the project become orphaned and are tolerated by the
// aggregation layer.
func (r *ProjectRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Project{}, "id = ?", id)
	return result.Error
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
