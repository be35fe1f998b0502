package cli

import (
	"context"
	"fmt"
	"strings"

	"taskman/internal/errors"
)

// MenuCommand represents an interactive menu operation. Execution receives
// the explicit session; the registry itself performs no I/O.
type MenuCommand interface {
	Execute(ctx context.Context, session *Session) error
	Description() string
}

// menuEntry pairs a menu code with its command for stable menu ordering
type menuEntry struct {
	code    string
	command MenuCommand
}

// CommandRegistry maps menu codes to their handlers
type CommandRegistry struct {
	commands map[string]MenuCommand
	order    []menuEntry
}

// NewCommandRegistry creates a new command registry with all menu commands
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]MenuCommand),
	}

	// Register all menu commands in display order
	registry.Register("r", NewRegisterCommand(app))
	registry.Register("a", NewAddCommand(app))
	registry.Register("va", NewViewAllCommand(app))
	registry.Register("vm", NewViewMineCommand(app))
	registry.Register("gr", NewReportCommand(app))
	registry.Register("ds", NewStatsCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(code string, command MenuCommand) {
	r.commands[code] = command
	r.order = append(r.order, menuEntry{code: code, command: command})
}

// Resolve returns the command registered for a menu code
func (r *CommandRegistry) Resolve(code string) (MenuCommand, bool) {
	command, exists := r.commands[code]
	return command, exists
}

// Execute runs the command registered for the given menu code
func (r *CommandRegistry) Execute(ctx context.Context, code string, session *Session) error {
	command, exists := r.Resolve(code)
	if !exists {
		return errors.NewInvalidInputError("menu_option", code, "unknown menu option")
	}
	return command.Execute(ctx, session)
}

// MenuText builds the interactive menu prompt from the registered commands
func (r *CommandRegistry) MenuText() string {
	var b strings.Builder
	b.WriteString("Select one of the following Options:\n")
	for _, entry := range r.order {
		fmt.Fprintf(&b, "%s - %s\n", entry.code, entry.command.Description())
	}
	b.WriteString("e - Exit\n: ")
	return b.String()
}
