package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"taxi_service/internal/middleware"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/views"
)

// base fills the layout data shared by every page.
func base(c *gin.Context, title string) views.Base {
	b := views.Base{Title: title}
	if id, ok := middleware.CurrentIdentity(c); ok {
		b.Username = id.Username
	}
	return b
}

// negotiate renders the named template, or data as JSON when the client asks for it.
func negotiate(c *gin.Context, status int, name string, data interface{}) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: name,
		Data:     data,
	})
}

func notFound(c *gin.Context) {
	negotiate(c, http.StatusNotFound, views.Error, views.ErrorView{
		Base:    base(c, "Not found"),
		Status:  http.StatusNotFound,
		Message: "The requested page was not found.",
	})
}

func serverError(c *gin.Context, err error, msg string) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	}).Error(msg)

	negotiate(c, http.StatusInternalServerError, views.Error, views.ErrorView{
		Base:    base(c, "Server error"),
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong. Please try again later.",
	})
}

func badRequest(c *gin.Context, err error) {
	logrus.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Warn("unreadable form")
	negotiate(c, http.StatusBadRequest, views.Error, views.ErrorView{
		Base:    base(c, "Bad request"),
		Status:  http.StatusBadRequest,
		Message: "The submitted form could not be read.",
	})
}

// paramID reads the :id path segment. Anything but a positive integer is a 404.
func paramID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		notFound(c)
		return 0, false
	}
	return uint(n), true
}

func listView[T any](c *gin.Context, title string, criteria search.Criteria, page pagination.Page[T]) views.ListView[T] {
	fields := make([]views.SearchField, 0, len(criteria.Filters))
	for _, f := range criteria.Filters {
		fields = append(fields, views.SearchField{
			Key:         f.Key,
			Value:       f.Query,
			Placeholder: fmt.Sprintf("Search by %s", f.Key),
		})
	}
	return views.ListView[T]{
		Base:         base(c, title),
		Items:        page.Items,
		Pagination:   page.Pagination,
		Search:       criteria.Echo(),
		SearchFields: fields,
		Query:        criteria.Values(),
	}
}

func pageRequest(c *gin.Context) pagination.Request {
	return pagination.ParseRequest(c.Query("page"), pagination.DefaultPageSize)
}

// NotFound is the handler for unknown routes.
func NotFound(c *gin.Context) {
	notFound(c)
}
