package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(userID string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.IdentityContextKey, &model.Identity{UserID: userID})
	}
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", resp.Body.String(), err)
	}
	return body.Error
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentIdentity(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	c.Set(middleware.IdentityContextKey, &model.Identity{UserID: "user-1"})
	if got := CurrentIdentity(c); got == nil || got.UserID != "user-1" {
		t.Fatalf("expected user-1, got %+v", got)
	}
}

func TestHandlersRejectMissingIdentity(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/cart", "/cart", NewCartHandler(nil, discardLogger()).Get, nil, nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) {
		internalError(c, logger, errors.New("pq: connection refused"), "Failed to fetch orders")
	}, nil, nil, nil)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Failed to fetch orders" {
		t.Fatalf("unexpected error message %q", msg)
	}
	if !strings.Contains(logs.String(), "connection refused") || !strings.Contains(logs.String(), `"level":"ERROR"`) {
		t.Fatalf("expected cause to be logged at error level, got %s", logs.String())
	}
}

func TestInternalErrorDeadline(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) {
		internalError(c, discardLogger(), context.DeadlineExceeded, "Failed to fetch orders")
	}, nil, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestBindJSON(t *testing.T) {
	var got dto.UpdateStatusRequest
	handler := func(c *gin.Context) {
		if bindJSON(c, &got) {
			c.Status(http.StatusOK)
		}
	}

	resp := performRequest(t, http.MethodPost, "/", "/", handler, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected empty body to be accepted, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/", "/", handler, nil, []byte("{oops"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed json, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Invalid request body" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestParsePositiveID(t *testing.T) {
	cases := map[string]bool{"1": true, "42": true, "0": false, "-3": false, "abc": false, "": false, "1.5": false}
	for raw, want := range cases {
		if _, ok := parsePositiveID(raw); ok != want {
			t.Errorf("parsePositiveID(%q) ok=%v, want %v", raw, ok, want)
		}
	}
}
