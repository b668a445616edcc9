// Package domain defines the persistence model for quotes and the typed
// error value used at service boundaries. The Quote type is mapped with
// GORM and forms the core data layer of the quote application.
package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Languages is the closed set of language tags a quote may carry. The two
// non-standard spellings ("chineese", "japaneese") are part of the recorded
// API contract and must not be corrected.
var Languages = []string{
	"arabic",
	"bengali",
	"chineese",
	"english",
	"french",
	"german",
	"greek",
	"hindi",
	"italian",
	"japaneese",
	"portuguese",
	"russian",
	"spanish",
}

// IsValidLanguage reports whether lang is a member of Languages.
func IsValidLanguage(lang string) bool {
	for _, l := range Languages {
		if lang == l {
			return true
		}
	}
	return false
}

// Quote represents a single stored quote: what was said, who said it, and
// in which language.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned on creation and
//     immutable thereafter.
//   - Message: quote text, 1–255 chars, stored trimmed and lowercased.
//   - Speaker: speaker name, 1–100 chars, stored trimmed and lowercased.
//   - Language: member of Languages.
//   - CreatedAt / UpdatedAt: UTC timestamps set by the store; UpdatedAt is
//     refreshed on every update and never precedes CreatedAt.
type Quote struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	Message   string    `json:"message"   gorm:"type:varchar(255);not null"`
	Speaker   string    `json:"speaker"   gorm:"type:varchar(100);not null"`
	Language  string    `json:"language"  gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Quote.
func (Quote) TableName() string { return "quotes" }

// QuoteInput carries the caller-supplied fields of a quote. Validation of
// lengths and language membership happens at the HTTP boundary before a
// QuoteInput reaches the store.
type QuoteInput struct {
	Message  string
	Speaker  string
	Language string
}

// lower performs Unicode-aware lowercasing. Quote text spans Greek,
// Cyrillic, and Devanagari scripts, where strings.ToLower mishandles some
// case mappings.
var lower = cases.Lower(language.Und)

// Normalize returns a copy of the input with message and speaker trimmed
// and lowercased, and the language tag trimmed. The store persists the
// normalized form only.
func (in QuoteInput) Normalize() QuoteInput {
	return QuoteInput{
		Message:  lower.String(strings.TrimSpace(in.Message)),
		Speaker:  lower.String(strings.TrimSpace(in.Speaker)),
		Language: strings.TrimSpace(in.Language),
	}
}
