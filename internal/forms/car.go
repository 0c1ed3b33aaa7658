package forms

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"taxi_service/internal/models"
	"taxi_service/internal/storage"
	"taxi_service/internal/validation"
)

// CarForm keeps the raw submitted ids so an invalid choice can be reported
// instead of failing the bind.
type CarForm struct {
	Model        string   `form:"model" json:"model"`
	Manufacturer string   `form:"manufacturer" json:"manufacturer"`
	Drivers      []string `form:"drivers" json:"drivers"`

	ManufacturerID uint   `form:"-" json:"-"`
	DriverIDs      []uint `form:"-" json:"-"`
}

func CarFormFrom(car models.Car) CarForm {
	f := CarForm{
		Model:          car.Model,
		Manufacturer:   strconv.FormatUint(uint64(car.ManufacturerID), 10),
		ManufacturerID: car.ManufacturerID,
	}
	for _, d := range car.Drivers {
		f.Drivers = append(f.Drivers, strconv.FormatUint(uint64(d.ID), 10))
		f.DriverIDs = append(f.DriverIDs, d.ID)
	}
	return f
}

// Validate checks the model and that every referenced record exists.
// The returned error is a storage failure, not a validation one.
func (f *CarForm) Validate(ctx context.Context, s storage.IStorage) (Errors, error) {
	f.Model = clean(f.Model)
	f.Manufacturer = clean(f.Manufacturer)

	errs := Errors{}
	errs.Check("model", f.Model, validation.Required, validation.MaxLength(MaxTextLength))

	if f.Manufacturer == "" {
		errs.Add("manufacturer", validation.MsgRequired)
	} else {
		id, ok := parseID(f.Manufacturer)
		if ok {
			_, err := s.Manufacturer().GetByID(ctx, id)
			if ok, err = found(err); err != nil {
				return nil, fmt.Errorf("lookup manufacturer %d: %w", id, err)
			}
		}
		if ok {
			f.ManufacturerID = id
		} else {
			errs.Add("manufacturer", validation.MsgInvalidChoice)
		}
	}

	f.DriverIDs = nil
	for _, raw := range f.Drivers {
		id, ok := parseID(raw)
		if ok {
			_, err := s.Driver().GetByID(ctx, id)
			if ok, err = found(err); err != nil {
				return nil, fmt.Errorf("lookup driver %d: %w", id, err)
			}
		}
		if !ok {
			errs.Add("drivers", validation.MsgInvalidChoice)
			break
		}
		f.DriverIDs = append(f.DriverIDs, id)
	}
	f.DriverIDs = storage.UniqueIDs(f.DriverIDs)
	return errs, nil
}

// HasDriver reports whether the driver checkbox for id should be checked.
func (f CarForm) HasDriver(id uint) bool {
	want := strconv.FormatUint(uint64(id), 10)
	for _, raw := range f.Drivers {
		if clean(raw) == want {
			return true
		}
	}
	return false
}

// IsManufacturer reports whether id is the selected manufacturer.
func (f CarForm) IsManufacturer(id uint) bool {
	return clean(f.Manufacturer) == strconv.FormatUint(uint64(id), 10)
}

func (f CarForm) Apply(car *models.Car) {
	car.Model = f.Model
	car.ManufacturerID = f.ManufacturerID
}

func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(clean(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// found turns a lookup error into an existence answer.
func found(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
