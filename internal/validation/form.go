// Package validation runs the local required-field checks that gate form
// submission. It never touches the network or storage.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to its message. A field absent from the map is
// valid.
type Errors map[string]string

// Valid reports whether every checked field passed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Credentials are the only fields that carry a required check. Profile
// fields (first/last name, email, title, hobby) are always optional.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

var validate = validator.New()

// 字段错误到固定提示消息的映射
var fieldMessages = map[string]string{
	"Username": "Username is required",
	"Password": "Password is required",
}

// Check trims both fields and reports every one that is empty afterwards.
// Identical input always yields identical output.
func Check(c Credentials) Errors {
	c.Username = strings.TrimSpace(c.Username)
	c.Password = strings.TrimSpace(c.Password)

	err := validate.Struct(c)
	if err == nil {
		return Errors{}
	}

	errs := Errors{}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}
	for _, fieldErr := range validationErrs {
		if msg, ok := fieldMessages[fieldErr.Field()]; ok {
			errs[strings.ToLower(fieldErr.Field())] = msg
		}
	}
	return errs
}
