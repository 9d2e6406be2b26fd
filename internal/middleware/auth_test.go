package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ============================================================================
// Mock TokenVerifier
// ============================================================================

type mockVerifier struct {
	verifyFunc func(token string) (int64, error)
}

func (m *mockVerifier) Verify(token string) (int64, error) {
	return m.verifyFunc(token)
}

func successVerifier(userID int64) *mockVerifier {
	return &mockVerifier{
		verifyFunc: func(token string) (int64, error) {
			return userID, nil
		},
	}
}

func errorVerifier(err error) *mockVerifier {
	return &mockVerifier{
		verifyFunc: func(token string) (int64, error) {
			return 0, err
		},
	}
}

// ============================================================================
// Test helpers
// ============================================================================

func newAuthRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Auth() middleware tests
// ============================================================================

func TestAuth_MissingAuthorizationHeader_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	mw := Auth(successVerifier(123))
	handler := &captureHandler{}

	req := newAuthRequest("")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] == "" {
		t.Error("expected a message in the error body")
	}
}

func TestAuth_InvalidToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	mw := Auth(errorVerifier(errors.New("bad signature")))
	handler := &captureHandler{}

	req := newAuthRequest("garbage-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ValidToken_InjectsUserID(t *testing.T) {
	t.Parallel()
	mw := Auth(successVerifier(42))
	handler := &captureHandler{}

	req := newAuthRequest("some-valid-token")
	rr := httptest.NewRecorder()

	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Fatal("handler should have been called")
	}
	if got := GetUserID(handler.ctx); got != 42 {
		t.Errorf("expected user id 42 in context, got %d", got)
	}
}

func TestAuth_RawTokenPassedVerbatim(t *testing.T) {
	t.Parallel()
	var seen string
	mw := Auth(&mockVerifier{verifyFunc: func(token string) (int64, error) {
		seen = token
		return 1, nil
	}})

	// No "Bearer " stripping: the header value goes to the verifier as-is.
	req := newAuthRequest("Bearer abc.def.ghi")
	rr := httptest.NewRecorder()
	mw(&captureHandler{}).ServeHTTP(rr, req)

	if seen != "Bearer abc.def.ghi" {
		t.Errorf("expected raw header value, verifier saw %q", seen)
	}
}

func TestGetUserID_AbsentFromContext(t *testing.T) {
	t.Parallel()
	if got := GetUserID(context.Background()); got != 0 {
		t.Errorf("expected 0 for absent user id, got %d", got)
	}
}
