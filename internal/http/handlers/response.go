// Package handlers provides the HTTP handler implementations for the
// public API.
//
// This file defines the response envelope shared by every endpoint and the
// single error funnel. All success and failure bodies have the shape
//
//	{ "status": bool, "message": string, "data": { ... } }
//
// fail() is the only place that writes an error response: it unwraps the
// typed application error, logs server-side failures with request context,
// and never leaks internal detail to the client.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotably/go-quote-backend/internal/domain"
	"github.com/quotably/go-quote-backend/internal/http/middleware"
)

// Response is the standard envelope returned by all endpoints.
type Response struct {
	// Status is true for successful operations, false otherwise.
	Status bool `json:"status" example:"true"`
	// Message is a human-readable summary, safe to show to users.
	Message string `json:"message" example:"All Quotes"`
	// Data carries the operation payload when there is one.
	Data any `json:"data,omitempty"`
}

// QuoteData wraps a single quote payload.
type QuoteData struct {
	Quote domain.Quote `json:"quote"`
}

// QuotesData wraps the quote collection payload.
type QuotesData struct {
	Quotes []domain.Quote `json:"quotes"`
}

// DeletedQuoteData echoes the id of a deleted quote.
type DeletedQuoteData struct {
	Quote DeletedQuote `json:"quote"`
}

// DeletedQuote holds just the identifier of a removed record.
type DeletedQuote struct {
	ID string `json:"id"`
}

// ok writes a success envelope with the given HTTP status.
func ok(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Status: true, Message: message, Data: data})
}

// fail aborts the request with the error envelope derived from err.
//
// Typed *domain.AppError values supply the HTTP status and user-facing
// message; anything else collapses to a generic 500. Server-side failures
// (>=500) are logged in full via the request-scoped logger, which is the
// only place their detail surfaces.
func fail(c *gin.Context, err error) {
	var app *domain.AppError
	if !errors.As(err, &app) {
		app = domain.NewAppError("Internal Server Error", http.StatusInternalServerError, domain.ErrorTypeServer)
	}

	status := app.Status()
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Str("type", string(app.Type)).
			Int("status", status).
			Err(err).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, Response{Status: false, Message: app.Message})
}

// failMsg aborts with an error envelope carrying an explicit status and
// message, used for validation failures raised at the HTTP boundary.
func failMsg(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Status: false, Message: message})
}

// Fail is the exported variant of fail for router-level fallbacks.
func Fail(c *gin.Context, status int, message string) { failMsg(c, status, message) }
