package validation

// UserValidator provides validation for User fields
type UserValidator struct {
	validator *Validator
}

// NewUserValidator creates a new user validator
func NewUserValidator() *UserValidator {
	return &UserValidator{
		validator: NewValidator(),
	}
}

// ValidateName validates a user name for creation or update
func (uv *UserValidator) ValidateName(name string) error {
	if !uv.validator.IsNonEmptyString(name) {
		validationError := NewValidationError()
		validationError.AddRequiredError("name", "Name cannot be empty.")
		return validationError
	}
	return nil
}

// ValidateEmail validates a user email address
func (uv *UserValidator) ValidateEmail(email string) error {
	if !uv.validator.IsValidEmail(email) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("email", email, "Invalid email address. Must contain '@'.")
		return validationError
	}
	return nil
}

// GetValidName returns the trimmed name if valid
func (uv *UserValidator) GetValidName(name string) (string, error) {
	if err := uv.ValidateName(name); err != nil {
		return "", err
	}
	return uv.validator.Trim(name), nil
}

// GetValidEmail returns the trimmed email if valid
func (uv *UserValidator) GetValidEmail(email string) (string, error) {
	if err := uv.ValidateEmail(email); err != nil {
		return "", err
	}
	return uv.validator.Trim(email), nil
}
