package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/domain"
	"taskman/internal/errors"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func makeTask(title, username string) domain.Task {
	return domain.Task{
		Title:        title,
		Username:     username,
		Description:  "some work",
		AssignedDate: date(2025, time.December, 1),
		DueDate:      date(2025, time.December, 31),
	}
}

func setupTaskService(t *testing.T, seed ...domain.Task) (TaskService, UserService, *mockRepository) {
	t.Helper()
	repo := newMockRepository()
	repo.tasks = seed
	repo.creds = map[string]string{"admin": "password", "alice": "a1", "bob": "b2"}

	users := NewUserService(repo)
	require.NoError(t, users.Load(context.Background()))

	tasks := NewTaskService(repo, users)
	require.NoError(t, tasks.Load(context.Background()))

	return tasks, users, repo
}

func TestTaskService_Load(t *testing.T) {
	t.Run("loads the persisted collection", func(t *testing.T) {
		svc, _, _ := setupTaskService(t, makeTask("Write report", "alice"))
		assert.Len(t, svc.Tasks(), 1)
	})

	t.Run("load failure is returned", func(t *testing.T) {
		repo := newMockRepository()
		repo.loadTasksErr = errors.NewStorageError("read tasks file", fmt.Errorf("boom"))
		svc := NewTaskService(repo, NewUserService(repo))

		assert.Error(t, svc.Load(context.Background()))
	})
}

func TestTaskService_Tasks_ReturnsCopy(t *testing.T) {
	svc, _, _ := setupTaskService(t, makeTask("Write report", "alice"))

	view := svc.Tasks()
	view[0].Title = "mutated"

	assert.Equal(t, "Write report", svc.Tasks()[0].Title)
}

func TestTaskService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and persists", func(t *testing.T) {
		svc, _, repo := setupTaskService(t)

		require.NoError(t, svc.Append(ctx, makeTask("Write report", "alice")))

		assert.Len(t, svc.Tasks(), 1)
		assert.Len(t, repo.tasks, 1)
	})

	t.Run("save failure keeps the task in memory", func(t *testing.T) {
		svc, _, repo := setupTaskService(t)
		repo.saveTasksErr = errors.NewStorageError("write tasks file", fmt.Errorf("disk full"))

		err := svc.Append(ctx, makeTask("Write report", "alice"))

		assert.Error(t, err)
		assert.Len(t, svc.Tasks(), 1, "the mutation is retained despite the failed save")
		assert.Empty(t, repo.tasks)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		svc, _, _ := setupTaskService(t)

		require.NoError(t, svc.Append(ctx, makeTask("first", "alice")))
		require.NoError(t, svc.Append(ctx, makeTask("second", "bob")))
		require.NoError(t, svc.Append(ctx, makeTask("third", "alice")))

		tasks := svc.Tasks()
		assert.Equal(t, "first", tasks[0].Title)
		assert.Equal(t, "second", tasks[1].Title)
		assert.Equal(t, "third", tasks[2].Title)
	})
}

func TestTaskService_FindMine(t *testing.T) {
	svc, _, _ := setupTaskService(t,
		makeTask("first", "alice"),
		makeTask("second", "bob"),
		makeTask("third", "alice"),
	)

	mine := svc.FindMine("alice")

	require.Len(t, mine, 2)
	assert.Equal(t, "first", mine[0].Title)
	assert.Equal(t, "third", mine[1].Title)

	assert.Empty(t, svc.FindMine("carol"))
}

func TestTaskService_UpdateByIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("first match wins among identical tasks", func(t *testing.T) {
		twin := makeTask("twin", "alice")
		svc, _, _ := setupTaskService(t, twin, twin)

		require.NoError(t, svc.Complete(ctx, twin))

		tasks := svc.Tasks()
		assert.True(t, tasks[0].Completed)
		assert.False(t, tasks[1].Completed)
	})

	t.Run("task not in the collection", func(t *testing.T) {
		svc, _, _ := setupTaskService(t)

		err := svc.Complete(ctx, makeTask("ghost", "alice"))

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("update persists the whole collection", func(t *testing.T) {
		task := makeTask("Write report", "alice")
		svc, _, repo := setupTaskService(t, task)

		require.NoError(t, svc.Complete(ctx, task))

		require.Len(t, repo.tasks, 1)
		assert.True(t, repo.tasks[0].Completed)
	})
}

func TestTaskService_Reassign(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the task to an existing user", func(t *testing.T) {
		task := makeTask("Write report", "alice")
		svc, _, _ := setupTaskService(t, task)

		require.NoError(t, svc.Reassign(ctx, task, "bob"))

		assert.Equal(t, "bob", svc.Tasks()[0].Username)
	})

	t.Run("completed tasks cannot be edited", func(t *testing.T) {
		task := makeTask("Write report", "alice")
		task.Completed = true
		svc, _, _ := setupTaskService(t, task)

		err := svc.Reassign(ctx, task, "bob")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		assert.Equal(t, "alice", svc.Tasks()[0].Username)
	})

	t.Run("unknown target user", func(t *testing.T) {
		task := makeTask("Write report", "alice")
		svc, _, _ := setupTaskService(t, task)

		err := svc.Reassign(ctx, task, "carol")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
		assert.Equal(t, "alice", svc.Tasks()[0].Username)
	})
}

func TestTaskService_Reschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("changes the due date", func(t *testing.T) {
		task := makeTask("Write report", "alice")
		svc, _, _ := setupTaskService(t, task)

		newDue := date(2026, time.January, 15)
		require.NoError(t, svc.Reschedule(ctx, task, newDue))

		assert.True(t, domain.SameDay(newDue, svc.Tasks()[0].DueDate))
	})

	t.Run("completed tasks cannot be rescheduled", func(t *testing.T) {
		task := makeTask("Write report", "alice")
		task.Completed = true
		svc, _, _ := setupTaskService(t, task)

		err := svc.Reschedule(ctx, task, date(2026, time.January, 15))

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}
