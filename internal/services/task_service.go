package services

import (
	"context"
	"time"

	"taskman/internal/domain"
	"taskman/internal/errors"
	"taskman/internal/repository/textfile"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo  textfile.Repository
	users UserService
	tasks []domain.Task
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo textfile.Repository, users UserService) TaskService {
	return &taskServiceImpl{
		repo:  repo,
		users: users,
	}
}

// Load replaces the in-memory collection with the persisted one
func (t *taskServiceImpl) Load(ctx context.Context) error {
	tasks, err := t.repo.LoadTasks(ctx)
	if err != nil {
		return err
	}
	t.tasks = tasks
	return nil
}

// Tasks returns a copy of the in-memory collection in storage order
func (t *taskServiceImpl) Tasks() []domain.Task {
	out := make([]domain.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// SaveAll persists the complete in-memory collection
func (t *taskServiceImpl) SaveAll(ctx context.Context) error {
	return t.repo.SaveTasks(ctx, t.tasks)
}

// Append adds a task to the end of the collection and persists immediately.
// On save failure the appended task stays in memory.
func (t *taskServiceImpl) Append(ctx context.Context, task domain.Task) error {
	t.tasks = append(t.tasks, task)
	return t.SaveAll(ctx)
}

// FindMine returns the tasks assigned to the given user, preserving their
// relative order in the collection
func (t *taskServiceImpl) FindMine(username string) []domain.Task {
	var mine []domain.Task
	for _, task := range t.tasks {
		if task.Username == username {
			mine = append(mine, task)
		}
	}
	return mine
}

// UpdateByIdentity locates a task by field equality (first match wins),
// applies the mutation and persists immediately
func (t *taskServiceImpl) UpdateByIdentity(ctx context.Context, task domain.Task, mutate func(*domain.Task)) error {
	idx := t.indexOf(task)
	if idx < 0 {
		return errors.NewNotFoundError("task", task.Title)
	}
	mutate(&t.tasks[idx])
	return t.SaveAll(ctx)
}

// Complete marks a task as completed
func (t *taskServiceImpl) Complete(ctx context.Context, task domain.Task) error {
	return t.UpdateByIdentity(ctx, task, func(task *domain.Task) {
		task.Completed = true
	})
}

// Reassign moves an incomplete task to another existing user
func (t *taskServiceImpl) Reassign(ctx context.Context, task domain.Task, newUsername string) error {
	if task.Completed {
		return errors.NewValidationError("cannot edit a completed task", nil)
	}
	if !t.users.Exists(newUsername) {
		return errors.NewNotFoundError("user", newUsername)
	}
	return t.UpdateByIdentity(ctx, task, func(task *domain.Task) {
		task.Username = newUsername
	})
}

// Reschedule changes the due date of an incomplete task
func (t *taskServiceImpl) Reschedule(ctx context.Context, task domain.Task, due time.Time) error {
	if task.Completed {
		return errors.NewValidationError("cannot edit a completed task", nil)
	}
	return t.UpdateByIdentity(ctx, task, func(task *domain.Task) {
		task.DueDate = due
	})
}

// indexOf returns the position of the first task equal to the given one,
// or -1. Field-for-field identical tasks resolve to the first occurrence.
func (t *taskServiceImpl) indexOf(task domain.Task) int {
	for i, candidate := range t.tasks {
		if candidate.Equal(task) {
			return i
		}
	}
	return -1
}
