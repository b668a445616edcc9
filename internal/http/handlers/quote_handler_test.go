package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotably/go-quote-backend/internal/domain"
)

// stubQuoteSvc lets each test script the service behavior per method.
type stubQuoteSvc struct {
	list   func(ctx context.Context) ([]domain.Quote, error)
	create func(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error)
	get    func(ctx context.Context, id string) (*domain.Quote, error)
	update func(ctx context.Context, id string, in domain.QuoteInput) (*domain.Quote, error)
	del    func(ctx context.Context, id string) error
}

func (s stubQuoteSvc) List(ctx context.Context) ([]domain.Quote, error) { return s.list(ctx) }
func (s stubQuoteSvc) Create(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error) {
	return s.create(ctx, in)
}
func (s stubQuoteSvc) Get(ctx context.Context, id string) (*domain.Quote, error) {
	return s.get(ctx, id)
}
func (s stubQuoteSvc) Update(ctx context.Context, id string, in domain.QuoteInput) (*domain.Quote, error) {
	return s.update(ctx, id, in)
}
func (s stubQuoteSvc) Delete(ctx context.Context, id string) error { return s.del(ctx, id) }

func newTestRouter(svc QuoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidations()
	h := New(svc)
	r := gin.New()
	r.GET("/quotes", h.ListQuotes)
	r.POST("/quotes", h.CreateQuote)
	r.GET("/quotes/:id", h.GetQuote)
	r.PUT("/quotes/:id", h.UpdateQuote)
	r.DELETE("/quotes/:id", h.DeleteQuote)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v (%s)", err, w.Body.String())
	}
	return body
}

func sampleQuote() *domain.Quote {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Quote{
		ID:        "141add05-4415-4938-b5a1-17e0d3171aff",
		Message:   "know thyself",
		Speaker:   "socrates",
		Language:  "greek",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestListQuotes_Success(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		list: func(context.Context) ([]domain.Quote, error) {
			return []domain.Quote{*sampleQuote()}, nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status"] != true || body["message"] != "All Quotes" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	data := body["data"].(map[string]any)
	quotes := data["quotes"].([]any)
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
	q := quotes[0].(map[string]any)
	for _, field := range []string{"id", "message", "speaker", "language", "createdAt", "updatedAt"} {
		if _, ok := q[field]; !ok {
			t.Fatalf("quote JSON missing %q: %v", field, q)
		}
	}
	if len(q) != 6 {
		t.Fatalf("quote JSON leaks extra fields: %v", q)
	}
}

func TestListQuotes_DatabaseError(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		list: func(context.Context) ([]domain.Quote, error) {
			return nil, domain.NewAppError("Error while reading data from the database",
				http.StatusInternalServerError, domain.ErrorTypeDatabase)
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status"] != false || body["message"] != "Error while reading data from the database" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestCreateQuote_Success(t *testing.T) {
	var gotInput domain.QuoteInput
	r := newTestRouter(stubQuoteSvc{
		create: func(_ context.Context, in domain.QuoteInput) (*domain.Quote, error) {
			gotInput = in
			return sampleQuote(), nil
		},
	})

	payload := `{"message":"  Know Thyself ","speaker":" Socrates ","language":"greek"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["message"] != "Quote saved successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if gotInput.Message != "know thyself" || gotInput.Speaker != "socrates" {
		t.Fatalf("input not normalized before service call: %+v", gotInput)
	}
}

func TestCreateQuote_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"missing message", `{"speaker":"x","language":"english"}`, "Quote is required"},
		{"empty message", `{"message":"","speaker":"x","language":"english"}`, "Quote cannot be empty"},
		{"blank message", `{"message":"   ","speaker":"x","language":"english"}`, "Quote cannot be empty"},
		{"message type", `{"message":5,"speaker":"x","language":"english"}`, "Quote must be a string"},
		{"missing speaker", `{"message":"hi","language":"english"}`, "Speaker is required"},
		{"empty speaker", `{"message":"hi","speaker":" ","language":"english"}`, "Name of the speaker cannot be empty"},
		{"speaker type", `{"message":"hi","speaker":5,"language":"english"}`, "Name of a speaker must be a string"},
		{"missing language", `{"message":"hi","speaker":"x"}`, "Please select a valid language from the dropdown"},
		{"bad language", `{"message":"hi","speaker":"x","language":"klingon"}`, "Please select a valid language from the dropdown"},
		{"uppercase language", `{"message":"hi","speaker":"x","language":"ENGLISH"}`, "Please select a valid language from the dropdown"},
		{"corrected spelling rejected", `{"message":"hi","speaker":"x","language":"chinese"}`, "Please select a valid language from the dropdown"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(stubQuoteSvc{
				create: func(context.Context, domain.QuoteInput) (*domain.Quote, error) {
					t.Fatalf("service must not be called on validation failure")
					return nil, nil
				},
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			body := decode(t, w)
			if body["status"] != false || body["message"] != tc.wantMsg {
				t.Fatalf("expected message %q, got %v", tc.wantMsg, body)
			}
		})
	}
}

func TestCreateQuote_LengthLimits(t *testing.T) {
	long := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	tests := []struct {
		name             string
		message, speaker string
		wantMsg          string
	}{
		{"message 255 ok", long(255), "x", ""},
		{"message 256 too long", long(256), "x", "Quote cannot be more than 255 characters long"},
		{"speaker 100 ok", "hi", long(100), ""},
		{"speaker 101 too long", "hi", long(101), "Name of the speaker cannot be more than 100 characters long"},
		// Limits count code points: 255 astral-plane characters pass even
		// though each is two UTF-16 units.
		{"message 255 emoji ok", strings.Repeat("\U0001F600", 255), "x", ""},
		{"message 256 emoji too long", strings.Repeat("\U0001F600", 256), "x", "Quote cannot be more than 255 characters long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(stubQuoteSvc{
				create: func(context.Context, domain.QuoteInput) (*domain.Quote, error) {
					return sampleQuote(), nil
				},
			})

			payload, _ := json.Marshal(map[string]string{
				"message": tc.message, "speaker": tc.speaker, "language": "english",
			})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if tc.wantMsg == "" {
				if w.Code != http.StatusCreated {
					t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
				}
				return
			}
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if body := decode(t, w); body["message"] != tc.wantMsg {
				t.Fatalf("expected %q, got %v", tc.wantMsg, body["message"])
			}
		})
	}
}

func TestGetQuote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *domain.AppError
		wantStatus int
	}{
		{"malformed id", domain.NewAppError("No quote found with the given id", http.StatusBadRequest, domain.ErrorTypeClient), http.StatusBadRequest},
		{"missing", domain.NewAppError("No quote found with the given id", http.StatusBadRequest, domain.ErrorTypeNotFound), http.StatusBadRequest},
		{"db", domain.NewAppError("Error while reading data from the database", http.StatusInternalServerError, domain.ErrorTypeDatabase), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(stubQuoteSvc{
				get: func(context.Context, string) (*domain.Quote, error) { return nil, tc.err },
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes/whatever", nil))

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if body := decode(t, w); body["message"] != tc.err.Message {
				t.Fatalf("expected %q, got %v", tc.err.Message, body["message"])
			}
		})
	}
}

func TestGetQuote_Success(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		get: func(_ context.Context, id string) (*domain.Quote, error) {
			if id != "141add05-4415-4938-b5a1-17e0d3171aff" {
				t.Fatalf("id not passed through: %q", id)
			}
			return sampleQuote(), nil
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes/141add05-4415-4938-b5a1-17e0d3171aff", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decode(t, w); body["message"] != "Got quote successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestUpdateQuote_ValidatesBeforeService(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		update: func(context.Context, string, domain.QuoteInput) (*domain.Quote, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/quotes/some-id",
		bytes.NewBufferString(`{"message":"","speaker":"x","language":"english"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateQuote_Success(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		update: func(_ context.Context, id string, in domain.QuoteInput) (*domain.Quote, error) {
			q := sampleQuote()
			q.Message = in.Message
			return q, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/quotes/141add05-4415-4938-b5a1-17e0d3171aff",
		bytes.NewBufferString(`{"message":"new wisdom","speaker":"socrates","language":"greek"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["message"] != "Quote updated successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestDeleteQuote_SuccessEchoesID(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		del: func(context.Context, string) error { return nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/141add05-4415-4938-b5a1-17e0d3171aff", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["message"] != "Quote deleted successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	data := body["data"].(map[string]any)
	quote := data["quote"].(map[string]any)
	if quote["id"] != "141add05-4415-4938-b5a1-17e0d3171aff" {
		t.Fatalf("deleted id not echoed: %v", quote)
	}
}

func TestDeleteQuote_NotFound(t *testing.T) {
	r := newTestRouter(stubQuoteSvc{
		del: func(context.Context, string) error {
			return domain.NewAppError("No quote found with the given id",
				http.StatusBadRequest, domain.ErrorTypeNotFound)
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/gone", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
