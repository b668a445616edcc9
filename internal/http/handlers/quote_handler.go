// Quote HTTP handlers.
//
// This file exposes the REST endpoints for quote resources:
//   - GET    /quotes       (list, newest first)
//   - POST   /quotes       (create)
//   - GET    /quotes/{id}  (fetch one)
//   - PUT    /quotes/{id}  (update)
//   - DELETE /quotes/{id}  (delete)
//
// Handlers are transport-thin: they validate input, call the quote
// service, and translate results into the response envelope. Every error
// is funneled through fail(); no handler writes an error body itself.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotably/go-quote-backend/internal/domain"
)

// QuoteService defines the store operations consumed by the HTTP handlers.
//
// Implementations must be safe for concurrent use, honor the provided
// context, and report failures exclusively as *domain.AppError values.
type QuoteService interface {
	// List returns all quotes ordered by creation time descending.
	List(ctx context.Context) ([]domain.Quote, error)
	// Create persists a new quote and returns it with id and timestamps set.
	Create(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error)
	// Get returns the quote with the given id.
	Get(ctx context.Context, id string) (*domain.Quote, error)
	// Update replaces the mutable fields of an existing quote.
	Update(ctx context.Context, id string, in domain.QuoteInput) (*domain.Quote, error)
	// Delete removes the quote with the given id.
	Delete(ctx context.Context, id string) error
}

// Handlers groups the HTTP endpoints for quotes. It depends on the
// abstract QuoteService to keep transport concerns separate from business
// logic.
type Handlers struct {
	svc QuoteService
}

// New constructs a Handlers instance bound to the given service.
func New(svc QuoteService) *Handlers {
	return &Handlers{svc: svc}
}

// ListQuotes godoc
// @ID          listQuotes
// @Summary     List quotes
// @Description Returns all quotes from the database, newest first.
// @Tags        Quotes
// @Produce     json
// @Success     200 {object} handlers.Response{data=handlers.QuotesData}
// @Failure     500 {object} handlers.Response "Database error"
// @Router      /quotes [get]
func (h *Handlers) ListQuotes(c *gin.Context) {
	quotes, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "All Quotes", QuotesData{Quotes: quotes})
}

// CreateQuote godoc
// @ID          createQuote
// @Summary     Create a quote
// @Description Validates and saves a new quote.
// @Tags        Quotes
// @Accept      json
// @Produce     json
// @Param       body body handlers.QuoteRequest true "Quote payload"
// @Success     201 {object} handlers.Response{data=handlers.QuoteData}
// @Failure     400 {object} handlers.Response "Validation error"
// @Failure     500 {object} handlers.Response "Database error"
// @Router      /quotes [post]
func (h *Handlers) CreateQuote(c *gin.Context) {
	in, violation := bindQuoteInput(c)
	if violation != "" {
		failMsg(c, http.StatusBadRequest, violation)
		return
	}

	q, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, "Quote saved successfully", QuoteData{Quote: *q})
}

// GetQuote godoc
// @ID          getQuote
// @Summary     Get a quote
// @Description Returns the quote with the given id.
// @Tags        Quotes
// @Produce     json
// @Param       id path string true "Quote ID (UUID)"
// @Success     200 {object} handlers.Response{data=handlers.QuoteData}
// @Failure     400 {object} handlers.Response "Bad or unknown id"
// @Failure     500 {object} handlers.Response "Database error"
// @Router      /quotes/{id} [get]
func (h *Handlers) GetQuote(c *gin.Context) {
	q, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Got quote successfully", QuoteData{Quote: *q})
}

// UpdateQuote godoc
// @ID          updateQuote
// @Summary     Update a quote
// @Description Replaces message, speaker, and language of an existing quote.
// @Tags        Quotes
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Quote ID (UUID)"
// @Param       body body handlers.QuoteRequest true "Quote payload"
// @Success     200 {object} handlers.Response{data=handlers.QuoteData}
// @Failure     400 {object} handlers.Response "Validation error or unknown id"
// @Failure     500 {object} handlers.Response "Database error"
// @Router      /quotes/{id} [put]
func (h *Handlers) UpdateQuote(c *gin.Context) {
	in, violation := bindQuoteInput(c)
	if violation != "" {
		failMsg(c, http.StatusBadRequest, violation)
		return
	}

	q, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Quote updated successfully", QuoteData{Quote: *q})
}

// DeleteQuote godoc
// @ID          deleteQuote
// @Summary     Delete a quote
// @Description Removes the quote with the given id.
// @Tags        Quotes
// @Produce     json
// @Param       id path string true "Quote ID (UUID)"
// @Success     200 {object} handlers.Response{data=handlers.DeletedQuoteData}
// @Failure     400 {object} handlers.Response "Bad or unknown id"
// @Failure     500 {object} handlers.Response "Database error"
// @Router      /quotes/{id} [delete]
func (h *Handlers) DeleteQuote(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, "Quote deleted successfully", DeletedQuoteData{Quote: DeletedQuote{ID: id}})
}
