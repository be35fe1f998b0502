package cli

import (
	"context"
	"time"

	"taskman/internal/api"
	"taskman/internal/domain"
	"taskman/internal/errors"
	"taskman/internal/validation"
)

// mockBusinessAPI implements the BusinessAPI interface for testing
type mockBusinessAPI struct {
	creds map[string]string
	tasks []domain.Task
	admin string

	loadUsersErr error
	loadTasksErr error
	generateErr  error

	taskReport string
	userReport string

	generateCalls int
	registered    []string

	taskValidator *validation.TaskValidator
}

// newMockBusinessAPI creates a mock seeded with the bootstrap admin entry
func newMockBusinessAPI() *mockBusinessAPI {
	return &mockBusinessAPI{
		creds:         map[string]string{"admin": "password"},
		admin:         "admin",
		taskReport:    "task report body",
		userReport:    "user report body",
		taskValidator: validation.NewTaskValidator(),
	}
}

var _ api.BusinessAPI = (*mockBusinessAPI)(nil)

func (m *mockBusinessAPI) LoadUsers(ctx context.Context) error {
	return m.loadUsersErr
}

func (m *mockBusinessAPI) LoadTasks(ctx context.Context) error {
	return m.loadTasksErr
}

func (m *mockBusinessAPI) Authenticate(ctx context.Context, username, password string) error {
	stored, ok := m.creds[username]
	if !ok {
		return errors.NewNotFoundError("user", username)
	}
	if stored != password {
		return errors.NewValidationError("wrong password", nil)
	}
	return nil
}

func (m *mockBusinessAPI) AdminUsername() string {
	return m.admin
}

func (m *mockBusinessAPI) UserExists(ctx context.Context, username string) bool {
	_, ok := m.creds[username]
	return ok
}

func (m *mockBusinessAPI) RegisterUser(ctx context.Context, username, password, confirmation string) error {
	if password != confirmation {
		return errors.NewValidationError("passwords do not match", nil)
	}
	if _, ok := m.creds[username]; ok {
		return errors.NewConflictError("username", username)
	}
	m.creds[username] = password
	m.registered = append(m.registered, username)
	return nil
}

func (m *mockBusinessAPI) AllTasks(ctx context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockBusinessAPI) MyTasks(ctx context.Context, username string) ([]domain.Task, error) {
	var mine []domain.Task
	for _, task := range m.tasks {
		if task.Username == username {
			mine = append(mine, task)
		}
	}
	return mine, nil
}

func (m *mockBusinessAPI) AddTask(ctx context.Context, username, title, description, dueDate string) (*domain.Task, error) {
	if _, ok := m.creds[username]; !ok {
		return nil, errors.NewNotFoundError("user", username)
	}
	due, err := m.taskValidator.ParseDueDate(dueDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid due date", err)
	}
	task := domain.NewTask(title, username, description, time.Now(), due)
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockBusinessAPI) CompleteTask(ctx context.Context, task domain.Task) error {
	idx := m.indexOf(task)
	if idx < 0 {
		return errors.NewNotFoundError("task", task.Title)
	}
	m.tasks[idx].Completed = true
	return nil
}

func (m *mockBusinessAPI) ReassignTask(ctx context.Context, task domain.Task, newUsername string) error {
	if task.Completed {
		return errors.NewValidationError("cannot edit a completed task", nil)
	}
	if _, ok := m.creds[newUsername]; !ok {
		return errors.NewNotFoundError("user", newUsername)
	}
	idx := m.indexOf(task)
	if idx < 0 {
		return errors.NewNotFoundError("task", task.Title)
	}
	m.tasks[idx].Username = newUsername
	return nil
}

func (m *mockBusinessAPI) RescheduleTask(ctx context.Context, task domain.Task, dueDate string) error {
	due, err := m.taskValidator.ParseDueDate(dueDate)
	if err != nil {
		return errors.NewValidationError("invalid due date", err)
	}
	if task.Completed {
		return errors.NewValidationError("cannot edit a completed task", nil)
	}
	idx := m.indexOf(task)
	if idx < 0 {
		return errors.NewNotFoundError("task", task.Title)
	}
	m.tasks[idx].DueDate = due
	return nil
}

func (m *mockBusinessAPI) GenerateReports(ctx context.Context) error {
	m.generateCalls++
	return m.generateErr
}

func (m *mockBusinessAPI) Statistics(ctx context.Context) (string, string, error) {
	if m.generateErr != nil {
		return "", "", m.generateErr
	}
	return m.taskReport, m.userReport, nil
}

func (m *mockBusinessAPI) indexOf(task domain.Task) int {
	for i, candidate := range m.tasks {
		if candidate.Equal(task) {
			return i
		}
	}
	return -1
}
