package submission

import (
	"github.com/go-playground/validator/v10"

	"github.com/wanjohi/darasa/core"
)

var (
	statusTag  = "substatus"
	statusText = "invalid submission status"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)
}

// Custom Validators

// statusValidation checks that the provided status is in AllStatuses.
func statusValidation(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	for _, s := range AllStatuses {
		if status == s {
			return true
		}
	}
	return false
}
