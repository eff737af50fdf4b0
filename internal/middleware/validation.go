package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Course codes are 2-4 uppercase letters followed by 3-4 digits, e.g. CS101.
var courseCodePattern = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{3,4}$`)

func validCourseCode(fl validator.FieldLevel) bool {
	return courseCodePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidators attaches custom binding tags to gin's validator
// engine. Must be called before the router handles requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("coursecode", validCourseCode)
}
