package api

import (
	"context"
	"time"

	"taskman/internal/config"
	"taskman/internal/domain"
	"taskman/internal/errors"
	"taskman/internal/services"
	"taskman/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// BusinessAPI defines the business-logic-only interface consumed by the CLI.
// All state lives in the service layer; the API applies input validation at
// the boundary and translates failures into structured errors.
type BusinessAPI interface {
	// ========== Session ==========

	// LoadUsers loads the credential mapping, bootstrapping the store on
	// first use
	LoadUsers(ctx context.Context) error

	// LoadTasks loads the task collection into memory
	LoadTasks(ctx context.Context) error

	// Authenticate checks a username/password pair
	Authenticate(ctx context.Context, username, password string) error

	// AdminUsername returns the configured administrative username
	AdminUsername() string

	// ========== User Management ==========

	// UserExists reports whether a username is registered
	UserExists(ctx context.Context, username string) bool

	// RegisterUser registers a new user after confirming the password
	RegisterUser(ctx context.Context, username, password, confirmation string) error

	// ========== Task Workflows ==========

	// AllTasks returns the full task collection in storage order
	AllTasks(ctx context.Context) ([]domain.Task, error)

	// MyTasks returns the tasks assigned to a user, order preserved
	MyTasks(ctx context.Context, username string) ([]domain.Task, error)

	// AddTask validates and appends a new incomplete task
	AddTask(ctx context.Context, username, title, description, dueDate string) (*domain.Task, error)

	// CompleteTask marks the selected task as completed
	CompleteTask(ctx context.Context, task domain.Task) error

	// ReassignTask moves an incomplete task to another existing user
	ReassignTask(ctx context.Context, task domain.Task, newUsername string) error

	// RescheduleTask parses a new due date and applies it to an incomplete task
	RescheduleTask(ctx context.Context, task domain.Task, dueDate string) error

	// ========== Reporting ==========

	// GenerateReports rewrites both report files from current data
	GenerateReports(ctx context.Context) error

	// Statistics returns both report contents, regenerating missing files
	Statistics(ctx context.Context) (taskReport string, userReport string, err error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services            *services.ServiceContainer
	config              *config.Config
	taskValidator       *validation.TaskValidator
	credentialValidator *validation.CredentialValidator
}

// NewBusinessAPI creates a new BusinessAPI instance over the service container
func NewBusinessAPI(container *services.ServiceContainer, cfg *config.Config) BusinessAPI {
	return &businessAPIImpl{
		services:            container,
		config:              cfg,
		taskValidator:       validation.NewTaskValidatorWithConfig(cfg),
		credentialValidator: validation.NewCredentialValidator(),
	}
}

func (b *businessAPIImpl) LoadUsers(ctx context.Context) error {
	return b.services.UserService.Load(ctx)
}

func (b *businessAPIImpl) LoadTasks(ctx context.Context) error {
	return b.services.TaskService.Load(ctx)
}

func (b *businessAPIImpl) Authenticate(ctx context.Context, username, password string) error {
	return b.services.UserService.Authenticate(username, password)
}

func (b *businessAPIImpl) AdminUsername() string {
	return b.config.Application.AdminUsername
}

func (b *businessAPIImpl) UserExists(ctx context.Context, username string) bool {
	return b.services.UserService.Exists(username)
}

// RegisterUser registers a new user. The password must match its
// confirmation; an existing username yields a conflict and is never
// overwritten.
func (b *businessAPIImpl) RegisterUser(ctx context.Context, username, password, confirmation string) error {
	if err := b.credentialValidator.ValidatePasswordConfirmation(password, confirmation); err != nil {
		return errors.NewValidationError("passwords do not match", err)
	}
	return b.services.UserService.Register(ctx, username, password)
}

func (b *businessAPIImpl) AllTasks(ctx context.Context) ([]domain.Task, error) {
	return b.services.TaskService.Tasks(), nil
}

func (b *businessAPIImpl) MyTasks(ctx context.Context, username string) ([]domain.Task, error) {
	return b.services.TaskService.FindMine(username), nil
}

// AddTask validates the new task's fields, requires the assignee to exist
// at creation time, and appends the task with the current time as its
// assigned date.
func (b *businessAPIImpl) AddTask(ctx context.Context, username, title, description, dueDate string) (*domain.Task, error) {
	if !b.services.UserService.Exists(username) {
		return nil, errors.NewNotFoundError("user", username)
	}
	if err := b.taskValidator.ValidateTitle(title); err != nil {
		return nil, errors.NewValidationError("invalid task title", err)
	}
	if err := b.taskValidator.ValidateDescription(description); err != nil {
		return nil, errors.NewValidationError("invalid task description", err)
	}
	due, err := b.taskValidator.ParseDueDate(dueDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid due date", err)
	}

	task := domain.NewTask(title, username, description, timeNow(), due)
	if err := b.services.TaskService.Append(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (b *businessAPIImpl) CompleteTask(ctx context.Context, task domain.Task) error {
	return b.services.TaskService.Complete(ctx, task)
}

func (b *businessAPIImpl) ReassignTask(ctx context.Context, task domain.Task, newUsername string) error {
	return b.services.TaskService.Reassign(ctx, task, newUsername)
}

func (b *businessAPIImpl) RescheduleTask(ctx context.Context, task domain.Task, dueDate string) error {
	due, err := b.taskValidator.ParseDueDate(dueDate)
	if err != nil {
		return errors.NewValidationError("invalid due date", err)
	}
	return b.services.TaskService.Reschedule(ctx, task, due)
}

func (b *businessAPIImpl) GenerateReports(ctx context.Context) error {
	return b.services.ReportingService.GenerateReports(ctx)
}

func (b *businessAPIImpl) Statistics(ctx context.Context) (string, string, error) {
	return b.services.ReportingService.Statistics(ctx)
}
