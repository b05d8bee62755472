package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/client-portal-api/internal/models"
	"github.com/yukikurage/client-portal-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTextRequired = errors.New("task text is required")
)

// TaskService handles the shared to-do list. Tasks have no owner.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// ListTasks returns every task
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask creates a new, not yet completed task
func (s *TaskService) CreateTask(text string) (*models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	task := &models.Task{Text: text}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// SetCompleted sets the completion flag of a task
func (s *TaskService) SetCompleted(taskID uint64, completed bool) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
