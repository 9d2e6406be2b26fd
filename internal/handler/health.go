package handler

import "net/http"

// Health reports process liveness for load balancers and probes.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
