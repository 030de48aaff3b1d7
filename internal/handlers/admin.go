package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shamiohaque/ueldo-backend/internal/apperrors"
	"github.com/shamiohaque/ueldo-backend/internal/catalog"
)

// AdminHandler serves the admin CRUD surface over the catalog. All routes
// sit behind the HTTP Basic admin gate.
type AdminHandler struct {
	engine *catalog.Engine
}

func NewAdminHandler(engine *catalog.Engine) *AdminHandler {
	return &AdminHandler{engine: engine}
}

// CreateCompetitionRequest is the body of POST /admin/competitions. Category,
// subcategory, and name are required; the rest default to empty strings.
type CreateCompetitionRequest struct {
	Category         string `json:"category"`
	Subcategory      string `json:"subcategory"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	ParticipantLimit string `json:"participant_limit"`
	EntryFee         string `json:"entry_fee"`
	Prizes           string `json:"prizes"`
	Link             string `json:"link"`
	Image            string `json:"image"`
}

// List handles GET /admin/competitions.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	cat, err := h.engine.GetAll(r.Context())
	if err != nil {
		log.Printf("admin list: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// Create handles POST /admin/competitions.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	id, err := h.engine.Create(r.Context(), req.Category, req.Subcategory, catalog.CreateInput{
		Name:             req.Name,
		Description:      req.Description,
		Date:             req.Date,
		Location:         req.Location,
		ParticipantLimit: req.ParticipantLimit,
		EntryFee:         req.EntryFee,
		Prizes:           req.Prizes,
		Link:             req.Link,
		Image:            req.Image,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("admin create: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id, "message": "Competition added"})
}

// Update handles PUT /admin/competitions/{id}. Only the fields present in
// the body are overwritten.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req catalog.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := h.engine.Update(r.Context(), id, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Competition not found"})
			return
		}
		log.Printf("admin update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Competition updated"})
}

// Delete handles DELETE /admin/competitions/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.engine.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Competition not found"})
			return
		}
		log.Printf("admin delete: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Competition deleted"})
}
