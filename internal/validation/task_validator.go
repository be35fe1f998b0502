package validation

import (
	"time"

	"taskman/internal/config"
	"taskman/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configuration
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("task_title")
		return validationError
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, 255) {
		validationError.AddInvalidLengthError("task_title", trimmed, 1, 255)
	}

	if !tv.validator.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError("task_title", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDescription validates a task description. The description occupies
// a single storage line, so embedded line breaks are rejected.
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("task_description")
		return validationError
	}

	if !tv.validator.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError("task_description", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ParseDueDate parses and validates a due date entered in the configured
// input format (DD-MM-YYYY by default)
func (tv *TaskValidator) ParseDueDate(input string) (time.Time, error) {
	due, err := tv.validator.ParseDate(input)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("due_date", input, "DD-MM-YYYY")
		return time.Time{}, validationError
	}

	if !tv.validator.IsReasonableDate(due) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("due_date", input, "date is out of reasonable range")
		return time.Time{}, validationError
	}

	return due, nil
}

// ValidateTask validates a fully populated domain.Task
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if titleErr := tv.ValidateTitle(task.Title); titleErr != nil {
		if titleValidationErr, ok := titleErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, titleValidationErr.Errors...)
		}
	}

	if descErr := tv.ValidateDescription(task.Description); descErr != nil {
		if descValidationErr, ok := descErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, descValidationErr.Errors...)
		}
	}

	if task.Username == "" {
		validationError.AddRequiredError("task_username")
	}
	if task.AssignedDate.IsZero() {
		validationError.AddRequiredError("assigned_date")
	}
	if task.DueDate.IsZero() {
		validationError.AddRequiredError("due_date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
