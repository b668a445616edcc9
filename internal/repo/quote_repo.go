// Package repo implements the data persistence layer for quotes, backed by
// GORM. This file provides repository functions for the Quote model.
//
// Exposed operations:
//   - CreateQuote(ctx, db, in)        -> (*domain.Quote, error)
//   - ListQuotes(ctx, db)             -> ([]domain.Quote, error)
//   - GetQuote(ctx, db, id)           -> (*domain.Quote, error)
//   - UpdateQuote(ctx, db, id, in)    -> (rows int64, err error)
//   - DeleteQuote(ctx, db, id)        -> (rows int64, err error)
//
// Repository functions return raw GORM errors (including
// gorm.ErrRecordNotFound); translation into typed application errors is the
// service layer's job.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quotably/go-quote-backend/internal/domain"
)

// CreateQuote inserts a new quote row with a server-assigned UUID and
// identical creation/update timestamps.
func CreateQuote(ctx context.Context, db *gorm.DB, in domain.QuoteInput) (*domain.Quote, error) {
	now := time.Now().UTC()
	q := &domain.Quote{
		ID:        uuid.NewString(),
		Message:   in.Message,
		Speaker:   in.Speaker,
		Language:  in.Language,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuotes returns all quotes, newest first. The ID tiebreak keeps the
// order deterministic for rows created within the same timestamp tick.
func ListQuotes(ctx context.Context, db *gorm.DB) ([]domain.Quote, error) {
	var out []domain.Quote
	err := db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// GetQuote fetches a quote by ID. Returns gorm.ErrRecordNotFound when no
// row matches.
func GetQuote(ctx context.Context, db *gorm.DB, id string) (*domain.Quote, error) {
	var q domain.Quote
	if err := db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuote replaces message, speaker, and language of the quote with the
// given id and refreshes updated_at. ID and created_at are never touched.
// The affected row count is returned so callers can detect writes that
// unexpectedly matched nothing.
func UpdateQuote(ctx context.Context, db *gorm.DB, id string, in domain.QuoteInput) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Quote{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"message":    in.Message,
			"speaker":    in.Speaker,
			"language":   in.Language,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// DeleteQuote removes the quote with the given id and reports how many rows
// were deleted.
func DeleteQuote(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	res := db.WithContext(ctx).Delete(&domain.Quote{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
