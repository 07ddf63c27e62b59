package validation

import (
	"fmt"
	"strings"
)

// TaskValidator provides validation for Task fields
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	if !tv.validator.IsNonEmptyString(title) {
		validationError := NewValidationError()
		validationError.AddRequiredError("title", "Task title cannot be empty.")
		return validationError
	}
	return nil
}

// ValidateStatus validates a task status against the allowed set
func (tv *TaskValidator) ValidateStatus(status string, allowed []string) error {
	for _, s := range allowed {
		if status == s {
			return nil
		}
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("status", status,
		fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return validationError
}

// GetValidTitle returns the trimmed title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.Trim(title), nil
}
