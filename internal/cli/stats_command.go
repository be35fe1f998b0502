package cli

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/api"
)

// StatsCommand handles the display statistics menu option, available to
// the administrative user only
type StatsCommand struct {
	api          api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Description returns the menu label for the command
func (c *StatsCommand) Description() string {
	return "display statistics"
}

// Execute prints both report files, regenerating them first if either is
// missing. Non-admin sessions are refused.
func (c *StatsCommand) Execute(ctx context.Context, session *Session) error {
	if !session.Admin {
		fmt.Fprintln(c.out, "Only admin users can display statistics.")
		return nil
	}

	taskReport, userReport, err := c.api.Statistics(ctx)
	if err != nil {
		fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
		return nil
	}

	fmt.Fprintln(c.out, "\n===== TASK STATISTICS =====")
	fmt.Fprintln(c.out, taskReport)
	fmt.Fprintln(c.out, "\n===== USER STATISTICS =====")
	fmt.Fprintln(c.out, userReport)
	return nil
}
