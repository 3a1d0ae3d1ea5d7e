package api

import (
	"net/http"

	"github.com/phrazzld/kitchen-api/internal/api/shared"
)

// Health answers liveness probes. It does not touch the database.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}
