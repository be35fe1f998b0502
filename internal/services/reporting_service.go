package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"taskman/internal/config"
	"taskman/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	tasks  TaskService
	users  UserService
	config *config.Config
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(tasks TaskService, users UserService, cfg *config.Config) ReportingService {
	return &reportingServiceImpl{
		tasks:  tasks,
		users:  users,
		config: cfg,
	}
}

// BuildTaskOverview computes aggregate statistics over the loaded task
// collection. Percentages are zero when the collection is empty.
func (r *reportingServiceImpl) BuildTaskOverview(now time.Time) *TaskOverview {
	tasks := r.tasks.Tasks()

	overview := &TaskOverview{
		TotalTasks: len(tasks),
	}
	for _, task := range tasks {
		if task.Completed {
			overview.CompletedTasks++
		}
		if task.IsOverdue(now) {
			overview.OverdueTasks++
		}
	}
	overview.UncompletedTasks = overview.TotalTasks - overview.CompletedTasks
	overview.IncompletePercentage = percentage(overview.UncompletedTasks, overview.TotalTasks)
	overview.OverduePercentage = percentage(overview.OverdueTasks, overview.TotalTasks)

	return overview
}

// BuildUserOverview computes per-user statistics for every registered user
func (r *reportingServiceImpl) BuildUserOverview(now time.Time) *UserOverview {
	tasks := r.tasks.Tasks()
	usernames := r.users.Usernames()

	overview := &UserOverview{
		TotalUsers: len(usernames),
		TotalTasks: len(tasks),
	}

	for _, username := range usernames {
		stats := UserStatistics{Username: username}
		var completed, overdue int
		for _, task := range tasks {
			if task.Username != username {
				continue
			}
			stats.TaskCount++
			if task.Completed {
				completed++
			}
			if task.IsOverdue(now) {
				overdue++
			}
		}

		if stats.TaskCount > 0 {
			stats.TaskPercentage = percentage(stats.TaskCount, overview.TotalTasks)
			stats.CompletedPercentage = percentage(completed, stats.TaskCount)
			stats.UncompletedPercentage = 100 - stats.CompletedPercentage
			stats.OverduePercentage = percentage(overdue, stats.TaskCount)
		}
		overview.Users = append(overview.Users, stats)
	}

	return overview
}

// GenerateReports renders both overviews and rewrites the report files
// wholesale
func (r *reportingServiceImpl) GenerateReports(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("generate reports", err)
	}

	now := timeNow()
	taskReport := r.renderTaskOverview(r.BuildTaskOverview(now))
	userReport := r.renderUserOverview(r.BuildUserOverview(now))

	if err := os.WriteFile(r.config.GetTaskOverviewPath(), []byte(taskReport), 0644); err != nil {
		return errors.NewStorageError("write task overview report", err)
	}
	if err := os.WriteFile(r.config.GetUserOverviewPath(), []byte(userReport), 0644); err != nil {
		return errors.NewStorageError("write user overview report", err)
	}

	return nil
}

// Statistics returns the contents of both report files, regenerating them
// first if either is missing
func (r *reportingServiceImpl) Statistics(ctx context.Context) (string, string, error) {
	if !fileExists(r.config.GetTaskOverviewPath()) || !fileExists(r.config.GetUserOverviewPath()) {
		if err := r.GenerateReports(ctx); err != nil {
			return "", "", err
		}
	}

	taskReport, err := os.ReadFile(r.config.GetTaskOverviewPath())
	if err != nil {
		return "", "", errors.NewStorageError("read task overview report", err)
	}
	userReport, err := os.ReadFile(r.config.GetUserOverviewPath())
	if err != nil {
		return "", "", errors.NewStorageError("read user overview report", err)
	}

	return string(taskReport), string(userReport), nil
}

// renderTaskOverview renders the aggregate task report: centered title,
// left-justified labels in a fixed column
func (r *reportingServiceImpl) renderTaskOverview(o *TaskOverview) string {
	sep := r.separator()
	width := r.config.Reports.LabelWidth

	var b strings.Builder
	b.WriteString(sep + "\n")
	b.WriteString(centerText("TASK OVERVIEW", r.config.Reports.TitleWidth) + "\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%-*s%d\n", width, "Total number of tasks:", o.TotalTasks)
	fmt.Fprintf(&b, "%-*s%d\n", width, "Total number of completed tasks:", o.CompletedTasks)
	fmt.Fprintf(&b, "%-*s%d\n", width, "Total number of uncompleted tasks:", o.UncompletedTasks)
	fmt.Fprintf(&b, "%-*s%d\n", width, "Total number of tasks that are overdue:", o.OverdueTasks)
	fmt.Fprintf(&b, "%-*s%.2f%%\n", width, "Percentage of tasks that are incomplete:", o.IncompletePercentage)
	fmt.Fprintf(&b, "%-*s%.2f%%\n", width, "Percentage of tasks that are overdue:", o.OverduePercentage)
	b.WriteString(sep + "\n")
	return b.String()
}

// renderUserOverview renders the per-user report
func (r *reportingServiceImpl) renderUserOverview(o *UserOverview) string {
	sep := r.separator()
	width := r.config.Reports.LabelWidth

	var b strings.Builder
	b.WriteString(sep + "\n")
	b.WriteString(centerText("USER OVERVIEW", r.config.Reports.TitleWidth) + "\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%-*s%d\n", width, "Total number of registered users:", o.TotalUsers)
	fmt.Fprintf(&b, "%-*s%d\n", width, "Total number of tasks:", o.TotalTasks)
	b.WriteString(sep + "\n")

	for _, stats := range o.Users {
		b.WriteString("\n")
		b.WriteString(sep + "\n")
		fmt.Fprintf(&b, "%-*s%s\n", r.config.Format.LabelWidth, "User:", stats.Username)
		b.WriteString(sep + "\n")

		if stats.TaskCount == 0 {
			b.WriteString("No tasks assigned to this user.\n")
			continue
		}

		fmt.Fprintf(&b, "%-*s%d\n", width, "Total tasks assigned:", stats.TaskCount)
		fmt.Fprintf(&b, "%-*s%.2f%%\n", width, "Percentage of total tasks:", stats.TaskPercentage)
		fmt.Fprintf(&b, "%-*s%.2f%%\n", width, "Percentage of tasks completed:", stats.CompletedPercentage)
		fmt.Fprintf(&b, "%-*s%.2f%%\n", width, "Percentage of tasks to be completed:", stats.UncompletedPercentage)
		fmt.Fprintf(&b, "%-*s%.2f%%\n", width, "Percentage of tasks overdue:", stats.OverduePercentage)
		b.WriteString(sep + "\n")
	}

	return b.String()
}

func (r *reportingServiceImpl) separator() string {
	return strings.Repeat("_", r.config.Reports.TitleWidth)
}

// centerText pads a string to the given width with the extra space on the
// right for odd padding
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
