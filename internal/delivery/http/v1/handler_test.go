package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/hashirsyed/portfolio-api/config"
	v1 "github.com/hashirsyed/portfolio-api/internal/delivery/http/v1"
	"github.com/hashirsyed/portfolio-api/internal/usecase"
	"github.com/hashirsyed/portfolio-api/pkg/email"
)

const (
	ownerMailbox  = "owner@example.com"
	allowedOrigin = "http://localhost:3000"
)

// stubSender records sends and can be primed to fail
type stubSender struct {
	calls int
	last  email.Message
	err   error
}

func (s *stubSender) Send(_ context.Context, msg email.Message) error {
	s.calls++
	s.last = msg
	return s.err
}

func newTestRouter(sender email.Sender) *gin.Engine {
	return newTestRouterWithTimeout(sender, 5*time.Second)
}

func newTestRouterWithTimeout(sender email.Sender, sendTimeout time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Port: "8080", CORSOrigin: allowedOrigin}
	contactUC := usecase.NewContactUsecase(sender, validator.New(), ownerMailbox, sendTimeout)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: usecase.NewProjectUsecase(),
		Config:    cfg,
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContactSuccess(t *testing.T) {
	sender := &stubSender{}
	router := newTestRouter(sender)

	w := postContact(router, `{"name":"Alice","email":"alice@example.com","message":"Hello, I would like to connect."}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Message sent successfully", body["message"])

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, ownerMailbox, sender.last.To)
	assert.Equal(t, "alice@example.com", sender.last.ReplyTo)
}

func TestSubmitContactValidationFailure(t *testing.T) {
	t.Run("empty name is rejected before any send", func(t *testing.T) {
		sender := &stubSender{}
		router := newTestRouter(sender)

		w := postContact(router, `{"name":"","email":"alice@example.com","message":"Hello"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, sender.calls)

		var body struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Errors)
	})

	t.Run("invalid email names the email field", func(t *testing.T) {
		sender := &stubSender{}
		router := newTestRouter(sender)

		w := postContact(router, `{"name":"Alice","email":"not-an-email","message":"Hello, I would like to connect."}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, sender.calls)
		assert.Contains(t, w.Body.String(), `"field":"email"`)
		assert.Contains(t, w.Body.String(), "Valid email is required")
	})

	t.Run("malformed JSON is a 400 with no send", func(t *testing.T) {
		sender := &stubSender{}
		router := newTestRouter(sender)

		w := postContact(router, `{"name": "Alice",`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, sender.calls)
	})
}

func TestSubmitContactTransportFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp auth: 535 rejected for user hunter2")}
	router := newTestRouter(sender)

	w := postContact(router, `{"name":"Alice","email":"alice@example.com","message":"Hello, I would like to connect."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error sending message", body["message"])
	// The transport error string stays out of the response
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "smtp auth")
}

// hangingSender stalls until the send context expires
type hangingSender struct{}

func (s *hangingSender) Send(ctx context.Context, _ email.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestSubmitContactSendTimeout(t *testing.T) {
	router := newTestRouterWithTimeout(&hangingSender{}, 50*time.Millisecond)

	w := postContact(router, `{"name":"Alice","email":"alice@example.com","message":"Hello, I would like to connect."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error sending message", body["message"])
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(&stubSender{})

	for _, path := range []string{"/health", "/api/health"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		})
	}
}

func TestListProjects(t *testing.T) {
	router := newTestRouter(&stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var projects []struct {
		Title        string   `json:"title"`
		Technologies []string `json:"technologies"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.NotEmpty(t, projects)
	assert.NotEmpty(t, projects[0].Title)
	assert.NotEmpty(t, projects[0].Technologies)
}

func TestCORSPolicy(t *testing.T) {
	router := newTestRouter(&stubSender{})

	t.Run("preflight from the configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", allowedOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, allowedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("preflight from another origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("cross-origin POST from another origin gets no allow header", func(t *testing.T) {
		sender := &stubSender{}
		router := newTestRouter(sender)

		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","message":"Hello, I would like to connect."}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(&stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
