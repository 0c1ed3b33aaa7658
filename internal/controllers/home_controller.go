package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taxi_service/internal/storage"
	"taxi_service/internal/views"
)

// visitsCookie counts home page visits per browser.
const visitsCookie = "num_visits"

type HomeController struct {
	store storage.IStorage
}

func NewHomeController(store storage.IStorage) *HomeController {
	return &HomeController{store: store}
}

// Index shows record counts and bumps the visit counter.
func (hc *HomeController) Index(c *gin.Context) {
	ctx := c.Request.Context()

	numDrivers, err := hc.store.Driver().Count(ctx)
	if err != nil {
		serverError(c, err, "count drivers")
		return
	}
	numCars, err := hc.store.Car().Count(ctx)
	if err != nil {
		serverError(c, err, "count cars")
		return
	}
	numManufacturers, err := hc.store.Manufacturer().Count(ctx)
	if err != nil {
		serverError(c, err, "count manufacturers")
		return
	}

	visits := 0
	if raw, err := c.Cookie(visitsCookie); err == nil {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			visits = n
		}
	}
	visits++
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(visitsCookie, strconv.Itoa(visits), 0, "/", "", false, true)

	negotiate(c, http.StatusOK, views.Index, views.HomeView{
		Base:             base(c, "Home"),
		NumDrivers:       numDrivers,
		NumCars:          numCars,
		NumManufacturers: numManufacturers,
		NumVisits:        visits,
	})
}
