// Package validation holds the ordered predicate-plus-message rules used by the forms.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule pairs a predicate with the message reported when the predicate fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Error is the failure of a single rule.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validate runs rules in order and stops at the first one that fails.
func Validate(value string, rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check(value) {
			return &Error{Message: rule.Message}
		}
	}
	return nil
}

const (
	MsgRequired         = "This field is required."
	MsgInvalidChoice    = "Select a valid choice."
	MsgInvalidUsername  = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgUsernameTaken    = "A user with that username already exists."
	MsgLicenseTaken     = "Driver with this License number already exists."
	MsgPasswordMismatch = "The two password fields didn't match."
	MsgPasswordTooShort = "This password is too short. It must contain at least 8 characters."
	MsgPasswordNumeric  = "This password is entirely numeric."
	maxUsernameLength   = 150
	minPasswordLength   = 8
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// Required fails on empty or whitespace-only input.
var Required = Rule{
	Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
	Message: MsgRequired,
}

// MaxLength fails when the value is longer than n characters.
func MaxLength(n int) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) <= n },
		Message: MaxLengthMessage(n),
	}
}

func MaxLengthMessage(n int) string {
	return fmt.Sprintf("Ensure this value has at most %d characters.", n)
}

// UsernameRules mirror the account username constraints.
var UsernameRules = []Rule{
	Required,
	MaxLength(maxUsernameLength),
	{
		Check:   usernamePattern.MatchString,
		Message: MsgInvalidUsername,
	},
}

// PasswordRules are checked against the first password field.
var PasswordRules = []Rule{
	Required,
	{
		Check:   func(v string) bool { return len([]rune(v)) >= minPasswordLength },
		Message: MsgPasswordTooShort,
	},
	{
		Check:   func(v string) bool { return !isDigits(v) },
		Message: MsgPasswordNumeric,
	},
}
