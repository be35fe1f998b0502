package cli

import (
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/domain"
	"taskman/internal/repository/textfile"
)

// taskRenderer writes task blocks in the aligned two-column display
// format, matching the on-disk block layout
type taskRenderer struct {
	out    io.Writer
	config *config.Config
}

func newTaskRenderer(out io.Writer, cfg *config.Config) *taskRenderer {
	return &taskRenderer{out: out, config: cfg}
}

// Render writes one task block framed by separator lines
func (r *taskRenderer) Render(task domain.Task) {
	fmt.Fprintf(r.out, "\n%s\n", textfile.SeparatorLine)
	r.renderFields(task)
	fmt.Fprintf(r.out, "%s\n", textfile.SeparatorLine)
}

// RenderNumbered writes one task block with a leading task number, as
// shown in the personal task view
func (r *taskRenderer) RenderNumbered(number int, task domain.Task) {
	fmt.Fprintf(r.out, "\n%s\n", textfile.SeparatorLine)
	r.field("Task Number:", fmt.Sprintf("%d", number))
	r.renderFields(task)
	fmt.Fprintf(r.out, "%s\n", textfile.SeparatorLine)
}

func (r *taskRenderer) renderFields(task domain.Task) {
	dateFormat := r.config.Format.DateFormat
	r.field("Task:", task.Title)
	r.field("Assigned to:", task.Username)
	r.field("Date Assigned:", task.AssignedDate.Format(dateFormat))
	r.field("Due Date:", task.DueDate.Format(dateFormat))
	r.field("Completed:", formatCompleted(task.Completed))
	fmt.Fprintf(r.out, "%-*s\n%s\n", r.config.Format.LabelWidth, "Task Description:", task.Description)
}

func (r *taskRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "%-*s%s\n", r.config.Format.LabelWidth, label, value)
}

func formatCompleted(completed bool) string {
	if completed {
		return "Yes"
	}
	return "No"
}
