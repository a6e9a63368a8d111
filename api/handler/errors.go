package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ddevcap/movielist/api/middleware"
	"github.com/ddevcap/movielist/store"
	"github.com/ddevcap/movielist/tmdb"
	"github.com/gin-gonic/gin"
)

// renderError maps err onto an HTTP status and renders the error page.
func renderError(c *gin.Context, err error) {
	status, message := classify(err)

	attrs := []any{
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
		"status", status,
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Warn("request rejected", attrs...)
	}

	renderPage(c, status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

func classify(err error) (int, string) {
	var ve *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "That movie is not in your list."
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict, "That movie is already in your list."
	case errors.Is(err, tmdb.ErrUpstream):
		return http.StatusBadGateway, "The movie database could not be reached. Please try again later."
	case errors.Is(err, tmdb.ErrInvalidImagePath):
		return http.StatusBadRequest, "The selected movie has an invalid poster path."
	case errors.As(err, &ve):
		return http.StatusBadRequest, "The selected movie could not be added: " + ve.Field + " " + ve.Message + "."
	default:
		return http.StatusInternalServerError, "Something went wrong."
	}
}

// NotFound renders the error page for unmatched routes.
func NotFound(c *gin.Context) {
	renderPage(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": "Page not found.",
	})
}
