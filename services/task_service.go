package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/freelancetrack/dto"
	"github.com/freelancetrack/lib/kanban"
	"github.com/freelancetrack/models"
	"github.com/freelancetrack/repositories"
)

// TaskService handles business logic for tasks and drives the kanban state
// machine. One in-memory board is kept per project so optimistic moves can be
// confirmed or reverted against the last-fetched state.
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository

	mu     sync.Mutex
	boards map[string]*kanban.Board // projectID -> board
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
		boards:      make(map[string]*kanban.Board),
	}
}

func (s *TaskService) board(projectID string) *kanban.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[projectID]
	if !ok {
		b = kanban.NewBoard()
		s.boards[projectID] = b
	}
	return b
}

// checkProject enforces that the project exists and belongs to the user
func (s *TaskService) checkProject(projectID, userID string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return fmt.Errorf("unauthorized: you don't have permission to access this project")
	}
	return nil
}

// ListTasks retrieves a project's tasks in creation order and refreshes the
// project's board with the fetched state (full refetch wins over any pending
// moves).
func (s *TaskService) ListTasks(userID, projectID string) ([]models.Task, error) {
	if err := s.checkProject(projectID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	s.board(projectID).Refresh(tasks)
	return tasks, nil
}

// ListAllTasks retrieves every task belonging to a user across projects,
// for the dashboard and roadmap views
func (s *TaskService) ListAllTasks(userID string) ([]models.Task, error) {
	return s.taskRepo.FindByUserID(userID)
}

// CreateTask creates a task, defaulting its status to the column it was
// quick-added from and deriving the legacy isCompleted flag
func (s *TaskService) CreateTask(userID, projectID string, req dto.CreateTaskRequest) (models.Task, error) {
	if err := s.checkProject(projectID, userID); err != nil {
		return models.Task{}, err
	}

	status := models.TaskStatus(req.Status)
	if !status.IsValid() {
		status = models.TaskStatusTodo
	}
	priority := models.TaskPriority(req.Priority)
	if !priority.IsValid() {
		priority = models.TaskPriorityMedium
	}

	task := models.Task{
		UserID:      userID,
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		StartDate:   req.StartDate,
		SubTasks:    models.SubTaskList{},
	}
	task.SetStatus(status)

	created, err := s.taskRepo.Create(task)
	if err != nil {
		return models.Task{}, err
	}

	// Keep the board cache current without a refetch
	if tasks, err := s.taskRepo.FindByProject(userID, projectID); err == nil {
		s.board(projectID).Refresh(tasks)
	}

	return created, nil
}

// MoveTask applies a drag-and-drop gesture: the drop target is resolved to a
// new status, the move is applied optimistically to the in-memory board, and
// the write is confirmed or reverted depending on the store's answer. An
// unchanged status is a no-op and issues no write.
func (s *TaskService) MoveTask(userID, projectID, taskID, targetID string) (models.Task, error) {
	if err := s.checkProject(projectID, userID); err != nil {
		return models.Task{}, err
	}

	tasks, err := s.taskRepo.FindByProject(userID, projectID)
	if err != nil {
		return models.Task{}, err
	}

	board := s.board(projectID)
	board.Refresh(tasks)

	var task models.Task
	found := false
	for _, t := range tasks {
		if t.ID == taskID {
			task = t
			found = true
			break
		}
	}
	if !found {
		return models.Task{}, fmt.Errorf("task not found")
	}

	newStatus, ok := kanban.ResolveDrop(tasks, taskID, targetID)
	if !ok {
		// No-op drop (same column, own card, or unknown target)
		return task, nil
	}

	board.ApplyMove(taskID, newStatus)

	if err := s.taskRepo.UpdateStatus(taskID, newStatus); err != nil {
		board.Revert(taskID)
		log.Printf("Failed to update task status, reverting optimistic move: %v", err)
		return models.Task{}, err
	}

	board.Confirm(taskID)
	task.SetStatus(newStatus)
	return task, nil
}

// UpdateTask replaces a task's mutable fields in one write. Status is not
// touched here: status only changes through MoveTask's drop resolution.
func (s *TaskService) UpdateTask(userID, projectID, taskID string, req dto.UpdateTaskRequest) (models.Task, error) {
	if err := s.checkProject(projectID, userID); err != nil {
		return models.Task{}, err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Task{}, err
	}
	if task.UserID != userID || task.ProjectID != projectID {
		return models.Task{}, fmt.Errorf("task not found")
	}

	priority := models.TaskPriority(req.Priority)
	if !priority.IsValid() {
		priority = task.Priority
	}

	task.Name = req.Name
	task.Description = req.Description
	task.Priority = priority
	task.DueDate = req.DueDate
	task.StartDate = req.StartDate
	task.SubTasks = buildSubTasks(req.SubTasks)

	if err := s.taskRepo.Update(task); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// ReplaceSubTasks swaps a task's whole checklist in a single write
func (s *TaskService) ReplaceSubTasks(userID, projectID, taskID string, subTasks []dto.SubTaskRequest) (models.Task, error) {
	if err := s.checkProject(projectID, userID); err != nil {
		return models.Task{}, err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return models.Task{}, err
	}
	if task.UserID != userID || task.ProjectID != projectID {
		return models.Task{}, fmt.Errorf("task not found")
	}

	task.SubTasks = buildSubTasks(subTasks)
	if err := s.taskRepo.UpdateSubTasks(taskID, task.SubTasks); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(userID, projectID, taskID string) error {
	if err := s.checkProject(projectID, userID); err != nil {
		return err
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID || task.ProjectID != projectID {
		return fmt.Errorf("task not found")
	}

	return s.taskRepo.Delete(taskID)
}

// buildSubTasks converts request items into the embedded checklist, minting
// IDs for new items and defaulting unknown statuses to active
func buildSubTasks(reqs []dto.SubTaskRequest) models.SubTaskList {
	list := make(models.SubTaskList, 0, len(reqs))
	for _, r := range reqs {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		status := models.SubTaskStatus(r.Status)
		if status != models.SubTaskStatusCompleted {
			status = models.SubTaskStatusActive
		}
		list = append(list, models.SubTask{ID: id, Name: r.Name, Status: status})
	}
	return list
}
