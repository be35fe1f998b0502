package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"taskman/internal/api"
	"taskman/internal/config"
	"taskman/internal/domain"
)

// ViewMineCommand handles the view my tasks menu option, including the
// interactive selection loop for completing or editing a task
type ViewMineCommand struct {
	api          api.BusinessAPI
	prompter     *Prompter
	out          io.Writer
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewViewMineCommand creates a new view mine command handler
func NewViewMineCommand(app *App) *ViewMineCommand {
	return &ViewMineCommand{
		api:          app.api,
		prompter:     app.prompter,
		out:          app.out,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Description returns the menu label for the command
func (c *ViewMineCommand) Description() string {
	return "view my tasks"
}

// Execute lists the session user's tasks with task numbers, then runs the
// selection loop. Selecting a task by number resolves it back to the full
// collection by field equality, first match wins.
func (c *ViewMineCommand) Execute(ctx context.Context, session *Session) error {
	mine, err := c.api.MyTasks(ctx, session.CurrentUser)
	if err != nil {
		return c.errorHandler.Handle("view my tasks", err)
	}

	if len(mine) == 0 {
		fmt.Fprintln(c.out, "You have no tasks assigned to you.")
		return nil
	}

	fmt.Fprintf(c.out, "\n--- Tasks assigned to %s ---\n", session.CurrentUser)
	renderer := newTaskRenderer(c.out, c.config)
	for i, task := range mine {
		renderer.RenderNumbered(i+1, task)
	}

	return c.selectionLoop(ctx, mine)
}

// selectionLoop prompts for a task number until the user acts on a task or
// returns to the main menu
func (c *ViewMineCommand) selectionLoop(ctx context.Context, mine []domain.Task) error {
	for {
		input, err := c.prompter.Prompt("\nEnter task number to select a task or -1 to return to main menu: ")
		if err != nil {
			return nil
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		if choice == -1 {
			return nil
		}
		if choice < 1 || choice > len(mine) {
			fmt.Fprintln(c.out, "Invalid task number.")
			continue
		}
		selected := mine[choice-1]

		action, err := c.prompter.Prompt("Enter 'c' to mark as complete or 'e' to edit task: ")
		if err != nil {
			return nil
		}

		switch strings.ToLower(action) {
		case "c":
			if err := c.api.CompleteTask(ctx, selected); err != nil {
				fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
				return nil
			}
			fmt.Fprintln(c.out, "Task marked as complete!")
			return nil
		case "e":
			return c.editTask(ctx, selected)
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

// editTask reassigns an incomplete task or changes its due date
func (c *ViewMineCommand) editTask(ctx context.Context, selected domain.Task) error {
	if selected.Completed {
		fmt.Fprintln(c.out, "Cannot edit a completed task.")
		return nil
	}

	option, err := c.prompter.Prompt("Enter 'u' to change username or 'd' to change due date: ")
	if err != nil {
		return nil
	}

	switch strings.ToLower(option) {
	case "u":
		newUsername, err := c.prompter.Prompt("Enter new username: ")
		if err != nil {
			return nil
		}
		if err := c.api.ReassignTask(ctx, selected, newUsername); err != nil {
			if c.errorHandler.IsNotFoundError(err) {
				fmt.Fprintln(c.out, "User does not exist. Task not updated.")
				return nil
			}
			fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
			return nil
		}
		fmt.Fprintln(c.out, "Task reassigned successfully!")
	case "d":
		newDueDate, err := c.prompter.Prompt("Enter new due date (DD-MM-YYYY): ")
		if err != nil {
			return nil
		}
		if err := c.api.RescheduleTask(ctx, selected, newDueDate); err != nil {
			if c.errorHandler.IsValidationError(err) {
				fmt.Fprintln(c.out, "Invalid datetime format. Task not updated.")
				return nil
			}
			fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
			return nil
		}
		fmt.Fprintln(c.out, "Due date updated successfully!")
	default:
		fmt.Fprintln(c.out, "Invalid choice.")
	}
	return nil
}
