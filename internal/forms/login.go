package forms

import "taxi_service/internal/validation"

const MsgInvalidLogin = "Please enter a correct username and password. Note that both fields may be case-sensitive."

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func (f *LoginForm) Validate() Errors {
	f.Username = clean(f.Username)

	errs := Errors{}
	errs.Check("username", f.Username, validation.Required)
	errs.Check("password", f.Password, validation.Required)
	return errs
}
