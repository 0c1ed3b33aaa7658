// Package views holds the embedded HTML templates and the data each page renders.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"

	"taxi_service/internal/forms"
	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
)

//go:embed templates/*.html
var files embed.FS

// Template names.
const (
	Index                     = "index.html"
	Login                     = "login.html"
	Error                     = "error.html"
	ManufacturerList          = "manufacturer_list.html"
	ManufacturerForm          = "manufacturer_form.html"
	ManufacturerConfirmDelete = "manufacturer_confirm_delete.html"
	CarList                   = "car_list.html"
	CarDetail                 = "car_detail.html"
	CarForm                   = "car_form.html"
	CarConfirmDelete          = "car_confirm_delete.html"
	DriverList                = "driver_list.html"
	DriverDetail              = "driver_detail.html"
	DriverForm                = "driver_form.html"
	DriverLicenseForm         = "driver_license_form.html"
	DriverConfirmDelete       = "driver_confirm_delete.html"
)

// Templates parses every embedded page together with the shared partials.
func Templates() (*template.Template, error) {
	t, err := template.New("").ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Base is the data every page needs for its layout.
type Base struct {
	Title    string `json:"-"`
	Username string `json:"-"`
}

type HomeView struct {
	Base             `json:"-"`
	NumDrivers       int64 `json:"num_drivers"`
	NumCars          int64 `json:"num_cars"`
	NumManufacturers int64 `json:"num_manufacturers"`
	NumVisits        int   `json:"num_visits"`
}

// SearchField is one box of a list page's search form.
type SearchField struct {
	Key         string
	Value       string
	Placeholder string
}

// ListView is a paginated list page.
type ListView[T any] struct {
	Base         `json:"-"`
	Items        []T               `json:"items"`
	Pagination   pagination.Meta   `json:"pagination"`
	Search       map[string]string `json:"search"`
	SearchFields []SearchField     `json:"-"`
	Query        url.Values        `json:"-"`
}

// PageURL links to page n keeping the active search.
func (v ListView[T]) PageURL(n int) template.URL {
	q := url.Values{}
	for k, vals := range v.Query {
		q[k] = vals
	}
	q.Set("page", strconv.Itoa(n))
	return template.URL("?" + q.Encode())
}

type ManufacturerFormView struct {
	Base
	Form   forms.ManufacturerForm
	Errors forms.Errors
	Object *models.Manufacturer
}

type CarFormView struct {
	Base
	Form          forms.CarForm
	Errors        forms.Errors
	Object        *models.Car
	Manufacturers []models.Manufacturer
	Drivers       []models.Driver
}

type CarDetailView struct {
	Base     `json:"-"`
	Car      models.Car `json:"car"`
	Assigned bool       `json:"assigned"`
}

type DriverFormView struct {
	Base
	Form   forms.DriverCreateForm
	Errors forms.Errors
}

type DriverLicenseView struct {
	Base
	Form   forms.DriverLicenseForm
	Errors forms.Errors
	Object models.Driver
}

type DriverDetailView struct {
	Base   `json:"-"`
	Driver models.Driver `json:"driver"`
}

// ConfirmDeleteView asks before removing Object.
type ConfirmDeleteView struct {
	Base
	Object    fmt.Stringer
	CancelURL string
}

type LoginView struct {
	Base
	Form   forms.LoginForm
	Errors forms.Errors
}

type ErrorView struct {
	Base    `json:"-"`
	Status  int    `json:"status"`
	Message string `json:"error"`
}
