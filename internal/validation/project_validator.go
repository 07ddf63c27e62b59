package validation

// ProjectValidator provides validation for Project fields
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a project title for creation or update
func (pv *ProjectValidator) ValidateTitle(title string) error {
	if !pv.validator.IsNonEmptyString(title) {
		validationError := NewValidationError()
		validationError.AddRequiredError("title", "Project title cannot be empty.")
		return validationError
	}
	return nil
}

// GetValidTitle returns the trimmed title if valid
func (pv *ProjectValidator) GetValidTitle(title string) (string, error) {
	if err := pv.ValidateTitle(title); err != nil {
		return "", err
	}
	return pv.validator.Trim(title), nil
}
