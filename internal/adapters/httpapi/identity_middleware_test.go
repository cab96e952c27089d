package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	memclock "github.com/homebase-apps/saved-locations-api/internal/adapters/memory/clock"
	memlocationrepo "github.com/homebase-apps/saved-locations-api/internal/adapters/memory/locationrepo"
	"github.com/homebase-apps/saved-locations-api/internal/app/locations"
)

// newTestHandler wires the full stack (router, identity middleware, service)
// over an in-memory repository.
func newTestHandler(t *testing.T) (http.Handler, *memlocationrepo.Repo, *memclock.ManualClock) {
	t.Helper()
	repo := memlocationrepo.NewRepo()
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	svc := locations.NewService(repo, clk)
	return NewRouter(NewServer(svc)), repo, clk
}

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return s
}

func bearerFor(t *testing.T, sub, email string) string {
	t.Helper()
	return "Bearer " + mintToken(t, jwt.MapClaims{"sub": sub, "email": email})
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var er errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return er
}

func TestIdentityMiddleware_MissingHeader_401(t *testing.T) {
	t.Parallel()

	h, repo, _ := newTestHandler(t)
	body := strings.NewReader(`{"tag":"home","latitude":40.7,"longitude":-74.0,"placeId":"abc123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/locations", body)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
	er := decodeErrorBody(t, rec)
	if er.OK || er.Message != "Unauthorized" {
		t.Fatalf("body=%+v", er)
	}

	// No storage mutation on rejected requests.
	got, _ := repo.List(context.Background())
	if len(got) != 0 {
		t.Fatalf("repo len=%d, want 0", len(got))
	}
}

func TestIdentityMiddleware_SchemeWithoutCredential_401(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestIdentityMiddleware_UndecodableToken_500(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusInternalServerError)
	}
	er := decodeErrorBody(t, rec)
	if er.OK || er.Message != "Internal server error" {
		t.Fatalf("body=%+v", er)
	}
}

func TestIdentityMiddleware_ClaimIncompleteToken_401(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)

	for name, claims := range map[string]jwt.MapClaims{
		"no email": {"sub": "u1"},
		"no sub":   {"email": "u1@x.com"},
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, claims))
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status=%d, want 401", name, rec.Code)
		}
	}
}

func TestIdentityMiddleware_ValidToken_PassesThrough(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	req.Header.Set("Authorization", bearerFor(t, "u1", "u1@x.com"))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d (body=%s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestHealthz_Unauthenticated(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusOK)
	}
}
