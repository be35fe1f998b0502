package cli

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/api"
)

// ReportCommand handles the generate reports menu option
type ReportCommand struct {
	api          api.BusinessAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Description returns the menu label for the command
func (c *ReportCommand) Description() string {
	return "generate reports"
}

// Execute regenerates both report files wholesale
func (c *ReportCommand) Execute(ctx context.Context, session *Session) error {
	if err := c.api.GenerateReports(ctx); err != nil {
		fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
		return nil
	}
	fmt.Fprintln(c.out, "Reports generated successfully.")
	return nil
}
