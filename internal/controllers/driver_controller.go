package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"taxi_service/internal/forms"
	"taxi_service/internal/middleware"
	"taxi_service/internal/models"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
	"taxi_service/internal/views"
)

const driverListPath = "/drivers/"

type DriverController struct {
	store storage.IStorage
}

func NewDriverController(store storage.IStorage) *DriverController {
	return &DriverController{store: store}
}

func (dc *DriverController) List(c *gin.Context) {
	criteria := search.Drivers(c.Request.URL.Query())
	page, err := dc.store.Driver().List(c.Request.Context(), criteria, pageRequest(c))
	if err != nil {
		serverError(c, err, "list drivers")
		return
	}
	negotiate(c, http.StatusOK, views.DriverList, listView(c, "Drivers", criteria, page))
}

// Detail shows the driver with the cars assigned to them.
func (dc *DriverController) Detail(c *gin.Context) {
	d, ok := dc.load(c)
	if !ok {
		return
	}
	negotiate(c, http.StatusOK, views.DriverDetail, views.DriverDetailView{
		Base:   base(c, d.Username),
		Driver: *d,
	})
}

func (dc *DriverController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.DriverForm, views.DriverFormView{Base: base(c, "Create driver")})
}

// Create registers a new driver account. The password is hashed before it is stored.
func (dc *DriverController) Create(c *gin.Context) {
	var form forms.DriverCreateForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}

	errs := form.Validate()
	if errs.Valid() {
		d, err := form.Driver()
		if err != nil {
			serverError(c, err, "build driver")
			return
		}
		err = dc.store.Driver().Create(c.Request.Context(), &d)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"driver_id":  d.ID,
				"request_id": middleware.GetRequestID(c),
			}).Info("driver created")
			c.Redirect(http.StatusFound, driverListPath)
			return
		}
		if !errs.AddDuplicate(err) {
			serverError(c, err, "create driver")
			return
		}
	}

	form.Password1, form.Password2 = "", ""
	c.HTML(http.StatusOK, views.DriverForm, views.DriverFormView{
		Base:   base(c, "Create driver"),
		Form:   form,
		Errors: errs,
	})
}

func (dc *DriverController) UpdateForm(c *gin.Context) {
	d, ok := dc.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.DriverLicenseForm, views.DriverLicenseView{
		Base:   base(c, "Update license"),
		Form:   forms.DriverLicenseForm{LicenseNumber: d.LicenseNumber},
		Object: *d,
	})
}

// Update changes only the license number.
func (dc *DriverController) Update(c *gin.Context) {
	d, ok := dc.load(c)
	if !ok {
		return
	}

	var form forms.DriverLicenseForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}

	errs := form.Validate()
	if errs.Valid() {
		err := dc.store.Driver().UpdateLicense(c.Request.Context(), d.ID, form.LicenseNumber)
		switch {
		case err == nil:
			c.Redirect(http.StatusFound, driverListPath)
			return
		case errors.Is(err, storage.ErrNotFound):
			notFound(c)
			return
		case !errs.AddDuplicate(err):
			serverError(c, err, "update license")
			return
		}
	}

	c.HTML(http.StatusOK, views.DriverLicenseForm, views.DriverLicenseView{
		Base:   base(c, "Update license"),
		Form:   form,
		Errors: errs,
		Object: *d,
	})
}

func (dc *DriverController) DeleteConfirm(c *gin.Context) {
	d, ok := dc.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.DriverConfirmDelete, views.ConfirmDeleteView{
		Base:      base(c, "driver"),
		Object:    d,
		CancelURL: d.AbsoluteURL(),
	})
}

func (dc *DriverController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	err := dc.store.Driver().Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, err, "delete driver")
		return
	}
	c.Redirect(http.StatusFound, driverListPath)
}

func (dc *DriverController) load(c *gin.Context) (*models.Driver, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}
	d, err := dc.store.Driver().GetByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return nil, false
	}
	if err != nil {
		serverError(c, err, "get driver")
		return nil, false
	}
	return d, true
}
