package views_test

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxi_service/internal/forms"
	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/views"
)

func TestPageURLKeepsSearch(t *testing.T) {
	t.Parallel()
	v := views.ListView[models.Car]{Query: url.Values{"model": {"1"}, "manufacturer": {"a&b"}}}
	assert.Equal(t, "?manufacturer=a%26b&model=1&page=3", string(v.PageURL(3)))
	assert.Equal(t, "?page=1", string(views.ListView[models.Car]{}.PageURL(1)))
}

func TestTemplatesRender(t *testing.T) {
	t.Parallel()
	tmpl, err := views.Templates()
	require.NoError(t, err)

	maker := models.Manufacturer{ID: 1, Name: "BMW", Country: "Germany"}
	driver := models.Driver{ID: 2, Username: "alice", FirstName: "Alice", LicenseNumber: "ALC12345"}
	car := models.Car{ID: 3, Model: "X5", ManufacturerID: 1, Manufacturer: maker, Drivers: []models.Driver{driver}}
	driver.Cars = []models.Car{car}
	base := views.Base{Title: "test", Username: "alice"}
	meta := pagination.Resolve(11, pagination.Request{Number: 2, Size: 5}).Meta()

	pages := []struct {
		name string
		data any
		want string
	}{
		{views.Index, views.HomeView{Base: base, NumDrivers: 1, NumCars: 2, NumManufacturers: 3, NumVisits: 4}, "visited this page 4 times"},
		{views.Login, views.LoginView{Errors: forms.Errors{forms.NonFieldErrors: {forms.MsgInvalidLogin}}}, "Please enter a correct username"},
		{views.Error, views.ErrorView{Base: base, Status: 404, Message: "Not found"}, "Not found"},
		{views.ManufacturerList, views.ListView[models.Manufacturer]{
			Base:         base,
			Items:        []models.Manufacturer{maker},
			Pagination:   meta,
			SearchFields: []views.SearchField{{Key: "name", Value: "B", Placeholder: "Search by name"}},
			Query:        url.Values{"name": {"B"}},
		}, `href="?name=B&amp;page=3"`},
		{views.ManufacturerForm, views.ManufacturerFormView{Base: base, Errors: forms.Errors{"name": {"This field is required."}}}, "This field is required."},
		{views.ManufacturerConfirmDelete, views.ConfirmDeleteView{Base: base, Object: maker, CancelURL: "/manufacturers/"}, "BMW Germany"},
		{views.CarList, views.ListView[models.Car]{Base: base, Items: []models.Car{car}, Pagination: meta}, "X5 (BMW)"},
		{views.CarDetail, views.CarDetailView{Base: base, Car: car, Assigned: true}, "Delete me from this car"},
		{views.CarForm, views.CarFormView{
			Base:          base,
			Form:          forms.CarFormFrom(car),
			Manufacturers: []models.Manufacturer{maker},
			Drivers:       []models.Driver{driver},
		}, `type="checkbox" name="drivers" value="2" checked`},
		{views.CarConfirmDelete, views.ConfirmDeleteView{Base: base, Object: car, CancelURL: car.AbsoluteURL()}, "X5"},
		{views.DriverList, views.ListView[models.Driver]{Base: base, Items: []models.Driver{driver}, Pagination: meta}, "(Me)"},
		{views.DriverDetail, views.DriverDetailView{Base: base, Driver: driver}, "ALC12345"},
		{views.DriverForm, views.DriverFormView{Base: base, Errors: forms.Errors{"password2": {"The two password fields didn't match."}}}, "didn&#39;t match"},
		{views.DriverLicenseForm, views.DriverLicenseView{Base: base, Object: driver, Form: forms.DriverLicenseForm{LicenseNumber: "ALC12345"}}, `value="ALC12345"`},
		{views.DriverConfirmDelete, views.ConfirmDeleteView{Base: base, Object: driver, CancelURL: driver.AbsoluteURL()}, "alice (Alice )"},
	}
	for _, p := range pages {
		p := p
		t.Run(p.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, p.name, p.data))
			assert.Contains(t, buf.String(), p.want)
		})
	}
}
