// Package forms binds submitted HTML forms and validates them field by field.
package forms

import (
	"errors"
	"strings"

	"taxi_service/internal/storage"
	"taxi_service/internal/validation"
)

// NonFieldErrors is the key for errors that belong to the form as a whole.
const NonFieldErrors = "__all__"

// Column sizes of the text fields in the schema.
const (
	MaxTextLength       = 255
	MaxPersonNameLength = 150
)

// Errors maps a form field to its messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Check runs rules against value and records the first failure under field.
func (e Errors) Check(field, value string, rules ...validation.Rule) {
	if err := validation.Validate(value, rules...); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			e.Add(field, verr.Message)
		}
	}
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

// First returns the first message for field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// AddDuplicate records a unique-constraint failure as a field error and
// reports whether err was one.
func (e Errors) AddDuplicate(err error) bool {
	var dup *storage.DuplicateError
	if !errors.As(err, &dup) {
		return false
	}
	switch dup.Field {
	case "username":
		e.Add("username", validation.MsgUsernameTaken)
	case "license_number":
		e.Add("license_number", validation.MsgLicenseTaken)
	default:
		e.Add(NonFieldErrors, dup.Error())
	}
	return true
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
