package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shamiohaque/ueldo-backend/internal/catalog"
)

// CompetitionHandler serves the public catalog endpoint.
type CompetitionHandler struct {
	engine *catalog.Engine
}

func NewCompetitionHandler(engine *catalog.Engine) *CompetitionHandler {
	return &CompetitionHandler{engine: engine}
}

// GetAll handles GET /api/competitions: the full catalog as JSON.
func (h *CompetitionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	cat, err := h.engine.GetAll(r.Context())
	if err != nil {
		log.Printf("get competitions: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}
