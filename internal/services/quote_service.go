// Package services defines the business logic of the quote store. The
// QuoteService validates identifiers, runs the repository operations, and
// translates every failure into a typed *domain.AppError so handlers never
// see raw driver errors.
package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quotably/go-quote-backend/internal/domain"
	"github.com/quotably/go-quote-backend/internal/repo"
)

// User-facing failure messages. These are part of the API contract and are
// asserted by clients; change with care.
const (
	MsgReadFailed    = "Error while reading data from the database"
	MsgWriteFailed   = "Error while writing data into the database"
	MsgUpdateFailed  = "Error while updating data into the database"
	MsgDeleteFailed  = "Error while deleting data from the database"
	MsgQuoteNotFound = "No quote found with the given id"
)

// QuoteService implements the store contract for quotes. The zero value is
// not usable; DB must be set.
//
// All methods are safe for concurrent use and honor the provided context.
// Existence is always checked before update/delete so callers get a precise
// NOT_FOUND instead of a silent no-op, at the cost of an extra round trip
// per mutating call.
type QuoteService struct {
	// DB is the database handle used for all quote operations.
	DB *gorm.DB
}

// List returns all quotes ordered by creation time, newest first.
//
// Errors: DATABASE/500 on any read failure.
func (s *QuoteService) List(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := repo.ListQuotes(ctx, s.DB)
	if err != nil {
		return nil, domain.NewAppError(MsgReadFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}
	return quotes, nil
}

// Create persists a new quote. Input is normalized (trimmed, lowercased)
// before it is written; the id and both timestamps are assigned here.
//
// Errors: DATABASE/500 on any write failure.
func (s *QuoteService) Create(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error) {
	q, err := repo.CreateQuote(ctx, s.DB, in.Normalize())
	if err != nil {
		return nil, domain.NewAppError(MsgWriteFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}
	return q, nil
}

// Get returns the quote with the given id.
//
// Errors:
//   - CLIENT/400 when id is not a well-formed UUID.
//   - NOT_FOUND/400 when no quote matches.
//   - DATABASE/500 on any other read failure.
func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewAppError(MsgQuoteNotFound, http.StatusBadRequest, domain.ErrorTypeClient)
	}
	q, err := repo.GetQuote(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(MsgQuoteNotFound, http.StatusBadRequest, domain.ErrorTypeNotFound)
		}
		return nil, domain.NewAppError(MsgReadFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}
	return q, nil
}

// Update replaces message, speaker, and language of an existing quote and
// refreshes its updatedAt timestamp. ID and createdAt are preserved. The
// updated record is read back and returned.
//
// Errors: same id semantics as Get; DATABASE/500 when the write fails or
// unexpectedly matches no row.
func (s *QuoteService) Update(ctx context.Context, id string, in domain.QuoteInput) (*domain.Quote, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	rows, err := repo.UpdateQuote(ctx, s.DB, id, in.Normalize())
	if err != nil || rows == 0 {
		return nil, domain.NewAppError(MsgUpdateFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}

	q, err := repo.GetQuote(ctx, s.DB, id)
	if err != nil {
		return nil, domain.NewAppError(MsgUpdateFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}
	return q, nil
}

// Delete removes the quote with the given id. Existence is verified first,
// so deleting an unknown id reports NOT_FOUND rather than succeeding
// silently.
//
// Errors:
//   - NOT_FOUND/400 when id is malformed or no quote matches.
//   - DATABASE/500 on any delete failure.
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewAppError(MsgQuoteNotFound, http.StatusBadRequest, domain.ErrorTypeNotFound)
	}
	if _, err := repo.GetQuote(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewAppError(MsgQuoteNotFound, http.StatusBadRequest, domain.ErrorTypeNotFound)
		}
		return domain.NewAppError(MsgReadFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}
	if _, err := repo.DeleteQuote(ctx, s.DB, id); err != nil {
		return domain.NewAppError(MsgDeleteFailed, http.StatusInternalServerError, domain.ErrorTypeDatabase)
	}
	return nil
}
