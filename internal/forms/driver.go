package forms

import (
	"fmt"

	"taxi_service/internal/models"
	"taxi_service/internal/validation"
)

// DriverCreateForm creates a driver account together with its password.
type DriverCreateForm struct {
	Username      string `form:"username" json:"username"`
	FirstName     string `form:"first_name" json:"first_name"`
	LastName      string `form:"last_name" json:"last_name"`
	LicenseNumber string `form:"license_number" json:"license_number"`
	Password1     string `form:"password1" json:"-"`
	Password2     string `form:"password2" json:"-"`
}

func (f *DriverCreateForm) Validate() Errors {
	f.Username = clean(f.Username)
	f.FirstName = clean(f.FirstName)
	f.LastName = clean(f.LastName)

	errs := Errors{}
	errs.Check("username", f.Username, validation.UsernameRules...)
	errs.Check("first_name", f.FirstName, validation.MaxLength(MaxPersonNameLength))
	errs.Check("last_name", f.LastName, validation.MaxLength(MaxPersonNameLength))
	errs.Check("license_number", f.LicenseNumber, licenseRules...)
	errs.Check("password1", f.Password1, validation.Required)
	errs.Check("password2", f.Password2, validation.Required)

	if f.Password1 != "" && f.Password2 != "" {
		if f.Password1 != f.Password2 {
			errs.Add("password2", validation.MsgPasswordMismatch)
		} else {
			errs.Check("password2", f.Password2, validation.PasswordRules...)
		}
	}
	return errs
}

// Driver builds the account with a hashed password.
func (f DriverCreateForm) Driver() (models.Driver, error) {
	d := models.Driver{
		Username:      f.Username,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		LicenseNumber: f.LicenseNumber,
	}
	if err := d.SetPassword(f.Password1); err != nil {
		return models.Driver{}, fmt.Errorf("hash password: %w", err)
	}
	return d, nil
}

// DriverLicenseForm updates only the license number.
type DriverLicenseForm struct {
	LicenseNumber string `form:"license_number" json:"license_number"`
}

func (f *DriverLicenseForm) Validate() Errors {
	errs := Errors{}
	errs.Check("license_number", f.LicenseNumber, licenseRules...)
	return errs
}

var licenseRules = append([]validation.Rule{validation.Required}, validation.LicenseNumberRules()...)
