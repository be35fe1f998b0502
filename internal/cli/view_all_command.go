package cli

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/api"
	"taskman/internal/config"
)

// ViewAllCommand handles the view all tasks menu option
type ViewAllCommand struct {
	api          api.BusinessAPI
	out          io.Writer
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewViewAllCommand creates a new view all command handler
func NewViewAllCommand(app *App) *ViewAllCommand {
	return &ViewAllCommand{
		api:          app.api,
		out:          app.out,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Description returns the menu label for the command
func (c *ViewAllCommand) Description() string {
	return "view all tasks"
}

// Execute prints every task in the collection as an aligned block
func (c *ViewAllCommand) Execute(ctx context.Context, session *Session) error {
	tasks, err := c.api.AllTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("view all tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found.")
		return nil
	}

	fmt.Fprintln(c.out, "\n--- All Tasks ---")
	renderer := newTaskRenderer(c.out, c.config)
	for _, task := range tasks {
		renderer.Render(task)
	}
	return nil
}
