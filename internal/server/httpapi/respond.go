// Package httpapi exposes the Atelier REST surface: the auth endpoints under
// /api/auth and the bearer-gated dashboard reads under /api/dashboard.
// Failures are reported with a JSON envelope of the form {"error": "..."}.
package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
