package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taxi_service/internal/forms"
	"taxi_service/internal/middleware"
	"taxi_service/internal/storage"
	"taxi_service/internal/views"
)

type AuthController struct {
	store    storage.IStorage
	sessions *middleware.Sessions
}

func NewAuthController(store storage.IStorage, sessions *middleware.Sessions) *AuthController {
	return &AuthController{store: store, sessions: sessions}
}

func (ac *AuthController) LoginPage(c *gin.Context) {
	form := forms.LoginForm{Next: c.Query("next")}
	c.HTML(http.StatusOK, views.Login, views.LoginView{Base: base(c, "Login"), Form: form})
}

// Login checks the credentials and starts a session. Wrong credentials
// re-render the form with a single non-field error.
func (ac *AuthController) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}

	errs := form.Validate()
	if errs.Valid() {
		driver, err := ac.store.Driver().GetByUsername(c.Request.Context(), form.Username)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			errs.Add(forms.NonFieldErrors, forms.MsgInvalidLogin)
		case err != nil:
			serverError(c, err, "login lookup")
			return
		case !driver.CheckPassword(form.Password):
			errs.Add(forms.NonFieldErrors, forms.MsgInvalidLogin)
		default:
			id := middleware.Identity{DriverID: driver.ID, Username: driver.Username}
			if err := ac.sessions.Login(c, id); err != nil {
				serverError(c, err, "issue session")
				return
			}
			logrus.WithFields(logrus.Fields{
				"driver_id":  driver.ID,
				"request_id": middleware.GetRequestID(c),
			}).Info("driver logged in")
			c.Redirect(http.StatusFound, safeNext(form.Next))
			return
		}
	}

	form.Password = ""
	c.HTML(http.StatusOK, views.Login, views.LoginView{Base: base(c, "Login"), Form: form, Errors: errs})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.sessions.Logout(c)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// safeNext only follows local absolute paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
