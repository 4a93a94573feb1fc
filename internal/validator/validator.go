// Package validator registers the custom binding tags used by request models.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// roleNameRegex matches role names: a lowercase letter followed by lowercase
// letters, digits, hyphens or underscores.
var roleNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// validateRoleName validates that a string is a well-formed role name.
func validateRoleName(fl validator.FieldLevel) bool {
	return roleNameRegex.MatchString(fl.Field().String())
}

// validateObjectID validates that a string is a 24-character hex ObjectID.
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("rolename", validateRoleName)
	_ = v.RegisterValidation("objectid", validateObjectID)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
