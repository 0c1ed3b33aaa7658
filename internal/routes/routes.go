package routes

import (
	"context"
	"errors"
	"html/template"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taxi_service/internal/controllers"
	"taxi_service/internal/middleware"
	"taxi_service/internal/storage"
	"taxi_service/internal/views"
)

type Options struct {
	Store        storage.IStorage
	Sessions     *middleware.Sessions
	LoginLimiter *middleware.RateLimiter
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
	// Templates defaults to the embedded view set.
	Templates *template.Template
}

func SetupRouter(opts Options) (*gin.Engine, error) {
	if opts.Templates == nil {
		t, err := views.Templates()
		if err != nil {
			return nil, err
		}
		opts.Templates = t
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	if opts.AccessLog != nil {
		r.Use(middleware.AccessLog(opts.AccessLog))
	}
	r.Use(gin.Recovery(), middleware.SecurityHeaders())
	r.Use(opts.Sessions.Authenticate(driverExists(opts.Store)))
	r.SetHTMLTemplate(opts.Templates)
	r.NoRoute(controllers.NotFound)

	AuthRoutes(r, controllers.NewAuthController(opts.Store, opts.Sessions), opts.LoginLimiter)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	HomeRoutes(protected, controllers.NewHomeController(opts.Store))
	ManufacturerRoutes(protected, controllers.NewManufacturerController(opts.Store))
	CarRoutes(protected, controllers.NewCarController(opts.Store))
	DriverRoutes(protected, controllers.NewDriverController(opts.Store))

	return r, nil
}

// driverExists drops sessions whose driver account is gone.
func driverExists(store storage.IStorage) func(context.Context, middleware.Identity) bool {
	return func(ctx context.Context, id middleware.Identity) bool {
		d, err := store.Driver().GetByUsername(ctx, id.Username)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				logrus.WithError(err).Warn("session lookup failed")
			}
			return false
		}
		return d.ID == id.DriverID
	}
}
