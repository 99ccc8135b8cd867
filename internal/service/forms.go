package service

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/campushub/internal/models"
)

// Toast texts shared by the dialogs.
const (
	msgRequiredFields  = "Please fill all required fields"
	msgSelectDates     = "Please select dates"
	msgInvalidMAC      = "Please enter a valid MAC address"
	msgInvalidOption   = "Please choose a valid option"
	msgInvalidDate     = "Please enter a valid date"
	msgDateOrder       = "End date must be on or after start date"
	msgUnsupportedFile = "Unsupported file type. Use .pdf, .doc, .docx or .zip"
)

const dateLayout = "2006-01-02"

// FormValidator checks dialog payloads and turns failures into toast text.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator registers the dialog validations on validate.
func NewFormValidator(validate *validator.Validate) *FormValidator {
	if validate == nil {
		validate = validator.New()
	}
	validate.RegisterValidation("filled", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	validate.RegisterValidation("assignment_file", func(fl validator.FieldLevel) bool { //nolint:errcheck
		ext := strings.ToLower(filepath.Ext(strings.TrimSpace(fl.Field().String())))
		for _, accepted := range models.AcceptedSubmissionExtensions {
			if ext == accepted {
				return true
			}
		}
		return false
	})
	return &FormValidator{validate: validate}
}

// Check validates req and returns the toast for the first problem, or "" when
// the payload is acceptable. Missing fields take precedence over malformed ones.
func (v *FormValidator) Check(req interface{}) string {
	err := v.validate.Struct(req)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return msgRequiredFields
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "filled" || fe.Tag() == "required" {
			return msgRequiredFields
		}
	}
	switch fieldErrs[0].Tag() {
	case "mac":
		return msgInvalidMAC
	case "assignment_file":
		return msgUnsupportedFile
	case "datetime":
		return msgInvalidDate
	default:
		return msgInvalidOption
	}
}

// checkDateRange expects two already validated dates.
func checkDateRange(from, to string) string {
	start, err := time.Parse(dateLayout, strings.TrimSpace(from))
	if err != nil {
		return msgInvalidDate
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(to))
	if err != nil {
		return msgInvalidDate
	}
	if end.Before(start) {
		return msgDateOrder
	}
	return ""
}
