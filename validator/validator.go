package validator

import (
	"fmt"
	"gallery-archive/models"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("username", validateUsername)
	v.RegisterValidation("sortfield", validateSortField)
	v.RegisterValidation("sortorder", validateSortOrder)
	v.RegisterValidation("gallerytype", validateGalleryType)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "username":
		return fmt.Sprintf("%s contains invalid characters (only letters, numbers, and -_.~ are allowed)", field)
	case "sortfield":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.SortFields, ", "))
	case "sortorder":
		return fmt.Sprintf("%s must be either 'asc' or 'desc'", field)
	case "gallerytype":
		return fmt.Sprintf("%s must be empty or 'favorites'", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}\-_.~]+$`)

// validateUsername validates an account name as it appears in gallery URLs
func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func validateSortField(fl validator.FieldLevel) bool {
	return models.IsSortField(fl.Field().String())
}

func validateSortOrder(fl validator.FieldLevel) bool {
	order := strings.ToLower(fl.Field().String())
	return order == "asc" || order == "desc"
}

func validateGalleryType(fl validator.FieldLevel) bool {
	switch models.GalleryType(fl.Field().String()) {
	case models.GalleryTypeSubmissions, models.GalleryTypeFavorites:
		return true
	}
	return false
}
