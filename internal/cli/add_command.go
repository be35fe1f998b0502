package cli

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/api"
)

// AddCommand handles the add task menu option
type AddCommand struct {
	api          api.BusinessAPI
	prompter     *Prompter
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		prompter:     app.prompter,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Description returns the menu label for the command
func (c *AddCommand) Description() string {
	return "add task"
}

// Execute runs the add task dialog. The assignee must already be
// registered; the due date prompt repeats until a parseable date is
// entered.
func (c *AddCommand) Execute(ctx context.Context, session *Session) error {
	username, err := c.prompter.Prompt("Name of person assigned to task: ")
	if err != nil {
		return err
	}
	if !c.api.UserExists(ctx, username) {
		fmt.Fprintln(c.out, "User does not exist. Please enter a valid username")
		return nil
	}

	title, err := c.prompter.Prompt("Title of Task: ")
	if err != nil {
		return err
	}
	description, err := c.prompter.Prompt("Description of Task: ")
	if err != nil {
		return err
	}

	for {
		dueDate, err := c.prompter.Prompt("Due date of task (DD-MM-YYYY): ")
		if err != nil {
			return err
		}

		_, err = c.api.AddTask(ctx, username, title, description, dueDate)
		if err != nil {
			if c.errorHandler.HasFieldError(err, "due_date") {
				fmt.Fprintln(c.out, "Invalid datetime format. Please use the format DD-MM-YYYY")
				continue
			}
			fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
			return nil
		}

		fmt.Fprintln(c.out, "Task successfully added.")
		return nil
	}
}
