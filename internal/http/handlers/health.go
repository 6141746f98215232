package handlers

import "net/http"

// Health reports liveness. Readiness of external collaborators is not
// checked here; a degraded directory or SMS channel degrades per-call.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
