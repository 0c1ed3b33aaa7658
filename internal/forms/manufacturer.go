package forms

import (
	"taxi_service/internal/models"
	"taxi_service/internal/validation"
)

type ManufacturerForm struct {
	Name    string `form:"name" json:"name"`
	Country string `form:"country" json:"country"`
}

func ManufacturerFormFrom(m models.Manufacturer) ManufacturerForm {
	return ManufacturerForm{Name: m.Name, Country: m.Country}
}

func (f *ManufacturerForm) Validate() Errors {
	f.Name = clean(f.Name)
	f.Country = clean(f.Country)

	errs := Errors{}
	errs.Check("name", f.Name, validation.Required, validation.MaxLength(MaxTextLength))
	errs.Check("country", f.Country, validation.Required, validation.MaxLength(MaxTextLength))
	return errs
}

func (f ManufacturerForm) Apply(m *models.Manufacturer) {
	m.Name = f.Name
	m.Country = f.Country
}
