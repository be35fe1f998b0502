package services

import (
	"context"

	"taskman/internal/domain"
)

// mockRepository implements textfile.Repository in memory, with injectable
// failures for exercising save-failure semantics
type mockRepository struct {
	tasks []domain.Task
	creds map[string]string

	loadTasksErr error
	saveTasksErr error
	loadCredsErr error
	saveCredsErr error

	saveTaskCalls int
	saveCredCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		creds: make(map[string]string),
	}
}

func (m *mockRepository) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	if m.loadTasksErr != nil {
		return nil, m.loadTasksErr
	}
	out := make([]domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockRepository) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	m.saveTaskCalls++
	if m.saveTasksErr != nil {
		return m.saveTasksErr
	}
	m.tasks = make([]domain.Task, len(tasks))
	copy(m.tasks, tasks)
	return nil
}

func (m *mockRepository) LoadCredentials(ctx context.Context) (map[string]string, error) {
	if m.loadCredsErr != nil {
		return nil, m.loadCredsErr
	}
	out := make(map[string]string, len(m.creds))
	for username, password := range m.creds {
		out[username] = password
	}
	return out, nil
}

func (m *mockRepository) SaveCredentials(ctx context.Context, creds map[string]string) error {
	m.saveCredCalls++
	if m.saveCredsErr != nil {
		return m.saveCredsErr
	}
	m.creds = make(map[string]string, len(creds))
	for username, password := range creds {
		m.creds[username] = password
	}
	return nil
}

func (m *mockRepository) Close() error {
	return nil
}
