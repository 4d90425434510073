// Package validation registers custom binding rules on gin's validator.
package validation

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DatePattern is the calendar-date shape stored for date of birth.
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RegisterCustomRules attaches the application's rules to gin's binding
// validator. Must run once before the router handles requests.
func RegisterCustomRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dateformat", validateDateFormat)
}

// validateDateFormat accepts only real YYYY-MM-DD calendar dates.
func validateDateFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !DatePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
