package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wmateusz/mealweek/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for planner value formats
	_ = v.RegisterValidation("datekey", validateDateKey)
	_ = v.RegisterValidation("unit", validateUnit)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDateKey accepts canonical YYYY-MM-DD date strings only
func validateDateKey(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validateUnit accepts only the fixed measurement unit set
func validateUnit(fl validator.FieldLevel) bool {
	_, err := domain.ParseUnit(fl.Field().String())
	return err == nil
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = fmt.Sprintf("%s is required", field)
		case "min":
			errs[field] = fmt.Sprintf("%s must be at least %s", field, e.Param())
		case "max":
			errs[field] = fmt.Sprintf("%s must be at most %s", field, e.Param())
		case "datekey":
			errs[field] = fmt.Sprintf("%s must be a YYYY-MM-DD date", field)
		case "unit":
			errs[field] = fmt.Sprintf("%s is not a valid unit", field)
		default:
			errs[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return errs
}
