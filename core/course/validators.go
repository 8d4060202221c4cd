package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/wanjohi/darasa/core"
)

var (
	enrollmentTag  = "enrollment"
	enrollmentText = "enrollment status must be Open or Closed"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(enrollmentTag, enrollmentValidation)
	core.RegisterCustomTranslation(enrollmentTag, enrollmentText)
}

// Custom Validators

// enrollmentValidation checks that the provided status is in AllStatuses.
func enrollmentValidation(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	for _, s := range AllStatuses {
		if status == s {
			return true
		}
	}
	return false
}
