package repositories

import (
	"github.com/freelancetrack/database"
	"github.com/freelancetrack/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByProject retrieves all tasks for a (user, project) pair in creation order
func (r *TaskRepository) FindByProject(userID, projectID string) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("created_at asc").
		Find(&tasks)
	return tasks, result.Error
}

// FindByUserID retrieves all tasks belonging to a user across projects
func (r *TaskRepository) FindByUserID(userID string) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&tasks)
	return tasks, result.Error
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, "id = ?", id)
	return task, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	result := database.DB.Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *TaskRepository) Update(task models.Task) error {
	result := database.DB.Save(&task)
	return result.Error
}

// UpdateStatus writes only the status and the derived legacy isCompleted flag
func (r *TaskRepository) UpdateStatus(id string, status models.TaskStatus) error {
	result := database.DB.Model(&models.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"is_completed": status == models.TaskStatusDone,
	})
	return result.Error
}

// UpdateSubTasks replaces the whole embedded checklist in one write
func (r *TaskRepository) UpdateSubTasks(id string, subTasks models.SubTaskList) error {
	result := database.DB.Model(&models.Task{}).Where("id = ?", id).Update("sub_tasks", subTasks)
	return result.Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Task{}, "id = ?", id)
	return result.Error
}
