package services

import (
	"context"
	"time"

	"taskman/internal/config"
	"taskman/internal/domain"
	"taskman/internal/repository/textfile"
)

// TaskOverview aggregates completion statistics across the whole collection
type TaskOverview struct {
	TotalTasks           int
	CompletedTasks       int
	UncompletedTasks     int
	OverdueTasks         int
	IncompletePercentage float64
	OverduePercentage    float64
}

// UserStatistics carries per-user task statistics for the user overview
type UserStatistics struct {
	Username              string
	TaskCount             int
	TaskPercentage        float64
	CompletedPercentage   float64
	UncompletedPercentage float64
	OverduePercentage     float64
}

// UserOverview aggregates per-user statistics across the credential store
type UserOverview struct {
	TotalUsers int
	TotalTasks int
	Users      []UserStatistics
}

// TaskService owns the in-memory ordered task collection. Every mutating
// operation persists the complete collection immediately; a failed save is
// reported but the in-memory mutation is retained, so memory and disk can
// diverge after a save failure.
type TaskService interface {
	// Collection lifecycle
	Load(ctx context.Context) error
	Tasks() []domain.Task
	SaveAll(ctx context.Context) error

	// Mutations
	Append(ctx context.Context, task domain.Task) error
	UpdateByIdentity(ctx context.Context, task domain.Task, mutate func(*domain.Task)) error

	// Workflow operations
	Complete(ctx context.Context, task domain.Task) error
	Reassign(ctx context.Context, task domain.Task, newUsername string) error
	Reschedule(ctx context.Context, task domain.Task, due time.Time) error

	// Views
	FindMine(username string) []domain.Task
}

// UserService owns the in-memory credential mapping
type UserService interface {
	Load(ctx context.Context) error
	Credentials() map[string]string
	Usernames() []string
	Exists(username string) bool
	Authenticate(username, password string) error
	Register(ctx context.Context, username, password string) error
}

// ReportingService computes aggregate statistics over the loaded
// collections and renders them to the two plain-text report files
type ReportingService interface {
	BuildTaskOverview(now time.Time) *TaskOverview
	BuildUserOverview(now time.Time) *UserOverview
	GenerateReports(ctx context.Context) error
	Statistics(ctx context.Context) (taskReport string, userReport string, err error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	UserService      UserService
	ReportingService ReportingService
}

// NewServiceContainer wires the services over a shared repository
func NewServiceContainer(repo textfile.Repository, cfg *config.Config) *ServiceContainer {
	userService := NewUserService(repo)
	taskService := NewTaskService(repo, userService)
	reportingService := NewReportingService(taskService, userService, cfg)

	return &ServiceContainer{
		TaskService:      taskService,
		UserService:      userService,
		ReportingService: reportingService,
	}
}
