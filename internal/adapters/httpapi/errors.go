package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{OK: false, Message: message})
}

// writeInternal logs the cause (with the request id when present) and returns
// a generic 500 body.
func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		log.Printf("httpapi: request %s failed: %v", rid, err)
	} else {
		log.Printf("httpapi: request failed: %v", err)
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
