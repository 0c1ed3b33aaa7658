package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi_service/internal/forms"
	"taxi_service/internal/models"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
	"taxi_service/internal/views"
)

const manufacturerListPath = "/manufacturers/"

type ManufacturerController struct {
	store storage.IStorage
}

func NewManufacturerController(store storage.IStorage) *ManufacturerController {
	return &ManufacturerController{store: store}
}

func (mc *ManufacturerController) List(c *gin.Context) {
	criteria := search.Manufacturers(c.Request.URL.Query())
	page, err := mc.store.Manufacturer().List(c.Request.Context(), criteria, pageRequest(c))
	if err != nil {
		serverError(c, err, "list manufacturers")
		return
	}
	negotiate(c, http.StatusOK, views.ManufacturerList, listView(c, "Manufacturers", criteria, page))
}

func (mc *ManufacturerController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.ManufacturerForm, views.ManufacturerFormView{Base: base(c, "Create manufacturer")})
}

func (mc *ManufacturerController) Create(c *gin.Context) {
	var form forms.ManufacturerForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		c.HTML(http.StatusOK, views.ManufacturerForm, views.ManufacturerFormView{
			Base:   base(c, "Create manufacturer"),
			Form:   form,
			Errors: errs,
		})
		return
	}

	var m models.Manufacturer
	form.Apply(&m)
	if err := mc.store.Manufacturer().Create(c.Request.Context(), &m); err != nil {
		serverError(c, err, "create manufacturer")
		return
	}
	c.Redirect(http.StatusFound, manufacturerListPath)
}

func (mc *ManufacturerController) UpdateForm(c *gin.Context) {
	m, ok := mc.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.ManufacturerForm, views.ManufacturerFormView{
		Base:   base(c, "Update manufacturer"),
		Form:   forms.ManufacturerFormFrom(*m),
		Object: m,
	})
}

func (mc *ManufacturerController) Update(c *gin.Context) {
	m, ok := mc.load(c)
	if !ok {
		return
	}

	var form forms.ManufacturerForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if errs := form.Validate(); !errs.Valid() {
		c.HTML(http.StatusOK, views.ManufacturerForm, views.ManufacturerFormView{
			Base:   base(c, "Update manufacturer"),
			Form:   form,
			Errors: errs,
			Object: m,
		})
		return
	}

	form.Apply(m)
	err := mc.store.Manufacturer().Update(c.Request.Context(), m)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, err, "update manufacturer")
		return
	}
	c.Redirect(http.StatusFound, manufacturerListPath)
}

func (mc *ManufacturerController) DeleteConfirm(c *gin.Context) {
	m, ok := mc.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.ManufacturerConfirmDelete, views.ConfirmDeleteView{
		Base:      base(c, "manufacturer"),
		Object:    m,
		CancelURL: manufacturerListPath,
	})
}

// Delete removes the manufacturer and, through the cascade, its cars.
func (mc *ManufacturerController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	err := mc.store.Manufacturer().Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, err, "delete manufacturer")
		return
	}
	c.Redirect(http.StatusFound, manufacturerListPath)
}

// load fetches the manufacturer named by :id, rendering 404/500 itself on failure.
func (mc *ManufacturerController) load(c *gin.Context) (*models.Manufacturer, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}
	m, err := mc.store.Manufacturer().GetByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c)
		return nil, false
	}
	if err != nil {
		serverError(c, err, "get manufacturer")
		return nil, false
	}
	return m, true
}
