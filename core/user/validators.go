package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/wanjohi/darasa/core"
)

var (
	roleTag  = "role"
	roleText = "invalid role"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, roleText)
}

// Custom Validators

// roleValidation checks that the provided role is in AllRoles (case-insensitive).
func roleValidation(fl validator.FieldLevel) bool {
	role := core.CleanString(fl.Field().String(), true /* lower */)
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}
