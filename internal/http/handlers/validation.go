// Request validation for the quote endpoints. Validation runs before any
// store access: a request that fails here never reaches the service layer.
// The violation messages are part of the API contract (the frontend
// displays them verbatim).

package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/quotably/go-quote-backend/internal/domain"
)

// Field-level violation messages, mirrored by the frontend's own checks.
const (
	msgMessageRequired = "Quote is required"
	msgMessageType     = "Quote must be a string"
	msgMessageEmpty    = "Quote cannot be empty"
	msgMessageTooLong  = "Quote cannot be more than 255 characters long"

	msgSpeakerRequired = "Speaker is required"
	msgSpeakerType     = "Name of a speaker must be a string"
	msgSpeakerEmpty    = "Name of the speaker cannot be empty"
	msgSpeakerTooLong  = "Name of the speaker cannot be more than 100 characters long"

	msgLanguageInvalid = "Please select a valid language from the dropdown"

	msgInvalidBody = "Invalid request body"
)

const (
	maxMessageLen = 255
	maxSpeakerLen = 100
)

// QuoteRequest is the JSON payload for creating or updating a quote.
// Pointer fields distinguish an absent field from an empty string so the
// "required" and "cannot be empty" violations stay distinct.
type QuoteRequest struct {
	// Message is the quote text (1–255 characters after trimming).
	Message *string `json:"message" binding:"required" example:"You will face many defeats in life, but never let yourself be defeated"`
	// Speaker is who said it (1–100 characters after trimming).
	Speaker *string `json:"speaker" binding:"required" example:"Maya Angelou"`
	// Language must be one of the supported language tags.
	Language *string `json:"language" binding:"required,quotelang" example:"english"`
}

// RegisterValidations installs the custom validations on gin's binding
// engine. Safe to call more than once.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("quotelang", func(fl validator.FieldLevel) bool {
			return domain.IsValidLanguage(fl.Field().String())
		})
	}
}

// bindQuoteInput binds and validates the request body, returning the
// normalized input or the first violation message. No partial validation
// side effects: the input either passes completely or is rejected.
func bindQuoteInput(c *gin.Context) (domain.QuoteInput, string) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return domain.QuoteInput{}, bindErrorMessage(err)
	}

	in := domain.QuoteInput{
		Message:  *req.Message,
		Speaker:  *req.Speaker,
		Language: *req.Language,
	}.Normalize()

	// Length rules apply to the trimmed value, so they run after binding.
	switch n := runeLen(in.Message); {
	case n == 0:
		return domain.QuoteInput{}, msgMessageEmpty
	case n > maxMessageLen:
		return domain.QuoteInput{}, msgMessageTooLong
	}
	switch n := runeLen(in.Speaker); {
	case n == 0:
		return domain.QuoteInput{}, msgSpeakerEmpty
	case n > maxSpeakerLen:
		return domain.QuoteInput{}, msgSpeakerTooLong
	}
	return in, ""
}

// bindErrorMessage translates a binding failure into the matching
// field-level violation message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "Message":
			return msgMessageRequired
		case "Speaker":
			return msgSpeakerRequired
		case "Language":
			return msgLanguageInvalid
		}
	}

	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) {
		switch terr.Field {
		case "message":
			return msgMessageType
		case "speaker":
			return msgSpeakerType
		case "language":
			return msgLanguageInvalid
		}
	}

	return msgInvalidBody
}

// runeLen counts Unicode code points rather than bytes; quote text is
// routinely multi-byte. Note this is laxer than a JS-style string length
// (UTF-16 code units) for astral-plane characters such as emoji, which
// count as one here but two there. The column limits are in characters,
// so code points are the unit we enforce.
func runeLen(s string) int { return len([]rune(s)) }
