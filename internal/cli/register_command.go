package cli

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/api"
)

// RegisterCommand handles the register user menu option
type RegisterCommand struct {
	api          api.BusinessAPI
	prompter     *Prompter
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{
		api:          app.api,
		prompter:     app.prompter,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Description returns the menu label for the command
func (c *RegisterCommand) Description() string {
	return "register user"
}

// Execute runs the registration dialog. An existing username aborts before
// any password is asked for; a password mismatch aborts without mutating
// the store.
func (c *RegisterCommand) Execute(ctx context.Context, session *Session) error {
	username, err := c.prompter.Prompt("New Username: ")
	if err != nil {
		return err
	}

	if c.api.UserExists(ctx, username) {
		fmt.Fprintln(c.out, "Error: Username already exists. Please choose a different username.")
		return nil
	}

	password, err := c.prompter.Prompt("New Password: ")
	if err != nil {
		return err
	}
	confirmation, err := c.prompter.Prompt("Confirm Password: ")
	if err != nil {
		return err
	}

	if password != confirmation {
		fmt.Fprintln(c.out, "Passwords do not match")
		return nil
	}

	if err := c.api.RegisterUser(ctx, username, password, confirmation); err != nil {
		fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
		return nil
	}

	fmt.Fprintln(c.out, "New user added successfully")
	return nil
}
