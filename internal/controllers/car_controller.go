package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taxi_service/internal/forms"
	"taxi_service/internal/middleware"
	"taxi_service/internal/models"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
	"taxi_service/internal/validation"
	"taxi_service/internal/views"
)

const carListPath = "/cars/"

type CarController struct {
	store storage.IStorage
}

func NewCarController(store storage.IStorage) *CarController {
	return &CarController{store: store}
}

// List supports `model` and `manufacturer` (maker name) search, combined with AND.
func (cc *CarController) List(c *gin.Context) {
	criteria := search.Cars(c.Request.URL.Query())
	page, err := cc.store.Car().List(c.Request.Context(), criteria, pageRequest(c))
	if err != nil {
		serverError(c, err, "list cars")
		return
	}
	negotiate(c, http.StatusOK, views.CarList, listView(c, "Cars", criteria, page))
}

func (cc *CarController) Detail(c *gin.Context) {
	car, ok := cc.load(c)
	if !ok {
		return
	}
	assigned := false
	if id, ok := middleware.CurrentIdentity(c); ok {
		assigned = car.HasDriver(id.DriverID)
	}
	negotiate(c, http.StatusOK, views.CarDetail, views.CarDetailView{
		Base:     base(c, car.Model),
		Car:      *car,
		Assigned: assigned,
	})
}

func (cc *CarController) CreateForm(c *gin.Context) {
	cc.renderForm(c, "Create car", forms.CarForm{}, nil, nil)
}

func (cc *CarController) Create(c *gin.Context) {
	var form forms.CarForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	errs, err := form.Validate(c.Request.Context(), cc.store)
	if err != nil {
		serverError(c, err, "validate car")
		return
	}
	if !errs.Valid() {
		cc.renderForm(c, "Create car", form, errs, nil)
		return
	}

	var car models.Car
	form.Apply(&car)
	err = cc.store.Car().Create(c.Request.Context(), &car, form.DriverIDs)
	if errors.Is(err, storage.ErrInvalidReference) {
		// a referenced record vanished between validation and insert
		errs.Add(forms.NonFieldErrors, validation.MsgInvalidChoice)
		cc.renderForm(c, "Create car", form, errs, nil)
		return
	}
	if err != nil {
		serverError(c, err, "create car")
		return
	}
	c.Redirect(http.StatusFound, carListPath)
}

func (cc *CarController) UpdateForm(c *gin.Context) {
	car, ok := cc.load(c)
	if !ok {
		return
	}
	cc.renderForm(c, "Update car", forms.CarFormFrom(*car), nil, car)
}

func (cc *CarController) Update(c *gin.Context) {
	car, ok := cc.load(c)
	if !ok {
		return
	}

	var form forms.CarForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	errs, err := form.Validate(c.Request.Context(), cc.store)
	if err != nil {
		serverError(c, err, "validate car")
		return
	}
	if !errs.Valid() {
		cc.renderForm(c, "Update car", form, errs, car)
		return
	}

	form.Apply(car)
	err = cc.store.Car().Update(c.Request.Context(), car, form.DriverIDs)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		notFound(c)
	case errors.Is(err, storage.ErrInvalidReference):
		errs.Add(forms.NonFieldErrors, validation.MsgInvalidChoice)
		cc.renderForm(c, "Update car", form, errs, car)
	case err != nil:
		serverError(c, err, "update car")
	default:
		c.Redirect(http.StatusFound, carListPath)
	}
}

func (cc *CarController) DeleteConfirm(c *gin.Context) {
	car, ok := cc.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.CarConfirmDelete, views.ConfirmDeleteView{
		Base:      base(c, "car"),
		Object:    car,
		CancelURL: car.AbsoluteURL(),
	})
}

func (cc *CarController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	err := cc.store.Car().Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, err, "delete car")
		return
	}
	c.Redirect(http.StatusFound, carListPath)
}

// ToggleAssign adds the current driver to the car, or removes them if already assigned.
func (cc *CarController) ToggleAssign(c *gin.Context) {
	car, ok := cc.load(c)
	if !ok {
		return
	}
	me, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	ctx := c.Request.Context()
	var err error
	if car.HasDriver(me.DriverID) {
		err = cc.store.Car().RemoveDriver(ctx, car.ID, me.DriverID)
	} else {
		err = cc.store.Car().AddDriver(ctx, car.ID, me.DriverID)
	}
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidReference) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, err, "toggle car assignment")
		return
	}

	logrus.WithFields(logrus.Fields{
		"car_id":     car.ID,
		"driver_id":  me.DriverID,
		"assigned":   !car.HasDriver(me.DriverID),
		"request_id": middleware.GetRequestID(c),
	}).Info("car assignment toggled")
	c.Redirect(http.StatusFound, car.AbsoluteURL())
}

func (cc *CarController) renderForm(c *gin.Context, title string, form forms.CarForm, errs forms.Errors, car *models.Car) {
	ctx := c.Request.Context()
	manufacturers, err := cc.store.Manufacturer().All(ctx)
	if err != nil {
		serverError(c, err, "list manufacturers")
		return
	}
	drivers, err := cc.store.Driver().All(ctx)
	if err != nil {
		serverError(c, err, "list drivers")
		return
	}
	c.HTML(http.StatusOK, views.CarForm, views.CarFormView{
		Base:          base(c, title),
		Form:          form,
		Errors:        errs,
		Object:        car,
		Manufacturers: manufacturers,
		Drivers:       drivers,
	})
}

func (cc *CarController) load(c *gin.Context) (*models.Car, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}
	car, err := cc.store.Car().GetByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return nil, false
	}
	if err != nil {
		serverError(c, err, "get car")
		return nil, false
	}
	return car, true
}
