package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Execute(t *testing.T) {
	ctx := context.Background()
	session := NewSession("admin", true)

	t.Run("successful add", func(t *testing.T) {
		app, mockAPI, out := newTestApp(t, "admin\nWrite report\nFinish quarterly summary\n31-12-2025\n")
		cmd := NewAddCommand(app)

		require.NoError(t, cmd.Execute(ctx, session))

		assert.Contains(t, out.String(), "Task successfully added.")
		require.Len(t, mockAPI.tasks, 1)
		assert.Equal(t, "Write report", mockAPI.tasks[0].Title)
		assert.Equal(t, "admin", mockAPI.tasks[0].Username)
		assert.False(t, mockAPI.tasks[0].Completed)
	})

	t.Run("unknown assignee aborts the dialog", func(t *testing.T) {
		app, mockAPI, out := newTestApp(t, "ghost\n")
		cmd := NewAddCommand(app)

		require.NoError(t, cmd.Execute(ctx, session))

		assert.Contains(t, out.String(), "User does not exist. Please enter a valid username")
		assert.Empty(t, mockAPI.tasks)
	})

	t.Run("due date prompt repeats until a date parses", func(t *testing.T) {
		input := "admin\nWrite report\nFinish quarterly summary\nsoon\n2025-12-31\n31-12-2025\n"
		app, mockAPI, out := newTestApp(t, input)
		cmd := NewAddCommand(app)

		require.NoError(t, cmd.Execute(ctx, session))

		output := out.String()
		assert.Equal(t, 2, strings.Count(output, "Invalid datetime format. Please use the format DD-MM-YYYY"))
		assert.Contains(t, output, "Task successfully added.")
		require.Len(t, mockAPI.tasks, 1)
	})
}

func TestNewAddCommand(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	cmd := NewAddCommand(app)

	assert.NotNil(t, cmd)
	assert.Equal(t, "add task", cmd.Description())
}
