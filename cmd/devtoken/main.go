package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tiny dev-only token issuer.
//
// The API decodes bearer tokens without verifying signatures (an upstream
// provider does that in real deployments), so local tokens can be unsigned.
// This server mints alg=none JWTs with chosen sub/email claims.

func main() {
	port := getenv("PORT", "5556")
	issuer := getenv("ISSUER", "http://devtoken:5556")
	ttl := getenvDuration("TTL", 30*time.Minute)

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Mint a token:
	//   GET /token?sub=dev|alice&email=alice@example.com
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		sub := strings.TrimSpace(r.URL.Query().Get("sub"))
		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if sub == "" || email == "" {
			http.Error(w, "missing sub or email", http.StatusBadRequest)
			return
		}

		now := time.Now().UTC()
		claims := jwt.MapClaims{
			"iss":   issuer,
			"sub":   sub,
			"email": email,
			"iat":   now.Unix(),
			"exp":   now.Add(ttl).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			http.Error(w, "failed to mint token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"sub":   sub,
			"email": email,
			"exp":   now.Add(ttl).Unix(),
		})
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("devtoken listening on :%s (iss=%s ttl=%s)", port, issuer, ttl)
	log.Fatal(srv.ListenAndServe())
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
