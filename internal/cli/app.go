package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"taskman/internal/api"
	"taskman/internal/config"
	"taskman/internal/errors"
	"taskman/internal/logging"
)

// App represents the interactive CLI application: the login dialog and the
// menu loop over the registered commands
type App struct {
	api          api.BusinessAPI
	config       *config.Config
	registry     *CommandRegistry
	prompter     *Prompter
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application reading from stdin and writing to stdout
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	return NewAppWithIO(businessAPI, cfg, os.Stdin, os.Stdout)
}

// NewAppWithIO creates a new CLI application with injected input and
// output streams, used by tests to script whole sessions
func NewAppWithIO(businessAPI api.BusinessAPI, cfg *config.Config, in io.Reader, out io.Writer) *App {
	app := &App{
		api:          businessAPI,
		config:       cfg,
		prompter:     NewPrompter(in, out),
		out:          out,
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes a full interactive session: load credentials, log in, load
// tasks, then loop over the menu until exit or end of input. Command
// failures are reported and control always returns to the menu.
func (a *App) Run(ctx context.Context) error {
	if err := a.api.LoadUsers(ctx); err != nil {
		return a.errorHandler.Handle("load users", err)
	}

	session, err := a.login(ctx)
	if err != nil {
		return err
	}

	if err := a.api.LoadTasks(ctx); err != nil {
		// A broken tasks file is reported; the session starts empty
		fmt.Fprintln(a.out, a.errorHandler.HandleSimple(err))
	}

	return a.menuLoop(ctx, session)
}

// login runs the login dialog until a credential pair authenticates
func (a *App) login(ctx context.Context) (*Session, error) {
	for {
		fmt.Fprintln(a.out, "LOGIN")
		username, err := a.prompter.Prompt("Username: ")
		if err != nil {
			return nil, err
		}
		password, err := a.prompter.Prompt("Password: ")
		if err != nil {
			return nil, err
		}

		err = a.api.Authenticate(ctx, username, password)
		switch {
		case err == nil:
			fmt.Fprintln(a.out, "Login Successful!")
			return NewSession(username, username == a.api.AdminUsername()), nil
		case errors.IsErrorType(err, errors.ErrorTypeNotFound):
			fmt.Fprintln(a.out, "User does not exist")
		default:
			fmt.Fprintln(a.out, "Wrong password")
		}
	}
}

// menuLoop dispatches menu codes to their commands until exit
func (a *App) menuLoop(ctx context.Context, session *Session) error {
	for {
		fmt.Fprintln(a.out)
		choice, err := a.prompter.Prompt(a.registry.MenuText())
		if err != nil {
			// End of input ends the session
			return nil
		}
		choice = strings.ToLower(choice)

		if choice == "e" {
			fmt.Fprintln(a.out, "Goodbye!!!")
			return nil
		}

		if err := a.registry.Execute(ctx, choice, session); err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeInvalidInput) {
				fmt.Fprintln(a.out, "You have made a wrong choice, Please Try again")
				continue
			}
			if errors.ShouldLogError(err) {
				logging.Debugf("menu command %q failed: %v\n", choice, err)
			}
			fmt.Fprintln(a.out, a.errorHandler.HandleSimple(err))
		}
	}
}
