package textfile

import (
	"fmt"
	"strings"

	"taskman/internal/domain"
	"taskman/internal/logging"
)

// Record block framing. Labels are left-justified to a fixed column; the
// value follows immediately with no fixed value column.
const (
	separatorWidth = 80
	labelWidth     = 20
	completedYes   = "Yes"
	completedNo    = "No"
)

// SeparatorLine frames every task record block
var SeparatorLine = strings.Repeat("_", separatorWidth)

// Field labels of the block grammar
const (
	labelTitle        = "Task"
	labelAssignedTo   = "Assigned to"
	labelDateAssigned = "Date Assigned"
	labelDueDate      = "Due Date"
	labelCompleted    = "Completed"
	labelDescription  = "Task Description"
)

// EncodeTasks serializes the full task collection to the block format.
// Blocks are joined by a single newline between the closing separator of
// one record and the opening separator of the next; the file ends on a
// separator with no trailing newline.
func EncodeTasks(tasks []domain.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SeparatorLine + "\n")
		writeField(&b, labelTitle, t.Title)
		writeField(&b, labelAssignedTo, t.Username)
		writeField(&b, labelDateAssigned, FormatDate(t.AssignedDate))
		writeField(&b, labelDueDate, FormatDate(t.DueDate))
		writeField(&b, labelCompleted, formatCompleted(t.Completed))
		// The description value is the line after its label, verbatim
		fmt.Fprintf(&b, "%-*s\n%s\n", labelWidth, labelDescription+":", t.Description)
		b.WriteString(SeparatorLine)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", labelWidth, label+":", value)
}

func formatCompleted(completed bool) string {
	if completed {
		return completedYes
	}
	return completedNo
}

// taskDecodeStrategy is one pure decode attempt over the full file text
type taskDecodeStrategy func(content string) ([]domain.Task, error)

// Strategies are tried in order until one yields a non-empty collection.
// The legacy line format is a one-shot fallback for files written before
// the block format existed.
var taskDecodeStrategies = []taskDecodeStrategy{
	decodeTaskBlocks,
	decodeTaskLines,
}

// DecodeTasks decodes the full task collection from file text. Decoding
// never fails: if every strategy errors or comes up empty, the collection
// resolves to empty.
func DecodeTasks(content string) []domain.Task {
	for _, decode := range taskDecodeStrategies {
		tasks, err := decode(content)
		if err != nil {
			logging.Debugf("task decode strategy failed: %v\n", err)
			continue
		}
		if len(tasks) > 0 {
			return tasks
		}
	}
	return nil
}

// decodeTaskBlocks parses the current block format. A malformed date in a
// recognized field aborts the whole strategy; a block that does not
// populate all six fields is dropped without affecting its siblings.
func decodeTaskBlocks(content string) ([]domain.Task, error) {
	var tasks []domain.Task
	blocks := strings.Split(content, "\n"+SeparatorLine+"\n")
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		task, complete, err := parseTaskBlock(block)
		if err != nil {
			return nil, err
		}
		if complete {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func parseTaskBlock(block string) (domain.Task, bool, error) {
	var task domain.Task
	var haveTitle, haveUsername, haveAssigned, haveDue, haveCompleted, haveDescription bool

	lines := strings.Split(strings.TrimSpace(block), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "_") {
			continue
		}

		idx := strings.Index(line, ": ")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+2:])

		switch key {
		case labelTitle:
			task.Title = value
			haveTitle = true
		case labelAssignedTo:
			task.Username = value
			haveUsername = true
		case labelDateAssigned:
			assigned, err := ParseDate(value)
			if err != nil {
				return domain.Task{}, false, err
			}
			task.AssignedDate = assigned
			haveAssigned = true
		case labelDueDate:
			due, err := ParseDate(value)
			if err != nil {
				return domain.Task{}, false, err
			}
			task.DueDate = due
			haveDue = true
		case labelCompleted:
			task.Completed = value == completedYes
			haveCompleted = true
		case labelDescription:
			// The description is on the next line
			if i+1 < len(lines) {
				task.Description = strings.TrimSpace(lines[i+1])
			} else {
				task.Description = ""
			}
			haveDescription = true
		}
	}

	complete := haveTitle && haveUsername && haveAssigned && haveDue && haveCompleted && haveDescription
	return task, complete, nil
}

// decodeTaskLines parses the legacy format: one record per line, six
// semicolon-separated fields in fixed order. Lines with any other field
// count are skipped; a malformed date fails the strategy.
func decodeTaskLines(content string) ([]domain.Task, error) {
	var tasks []domain.Task
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 6 {
			continue
		}

		due, err := ParseFlexibleDate(parts[3])
		if err != nil {
			return nil, err
		}
		assigned, err := ParseFlexibleDate(parts[4])
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, domain.Task{
			Username:     parts[0],
			Title:        parts[1],
			Description:  parts[2],
			DueDate:      due,
			AssignedDate: assigned,
			Completed:    parts[5] == completedYes,
		})
	}
	return tasks, nil
}
