package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/shamiohaque/ueldo-backend/internal/catalog"
	"github.com/shamiohaque/ueldo-backend/internal/handlers"
	"github.com/shamiohaque/ueldo-backend/internal/middleware"
	"github.com/shamiohaque/ueldo-backend/internal/models"
)

type memStore struct {
	mu      sync.Mutex
	catalog models.Catalog
}

func (s *memStore) Load(ctx context.Context) (models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Copy(), nil
}

func (s *memStore) Save(ctx context.Context, c models.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c.Copy()
	return nil
}

const (
	adminUser = "admin"
	adminPass = "s3cret"
)

func newAdminRouter(store *memStore) http.Handler {
	engine := catalog.NewEngine(store)
	admin := handlers.NewAdminHandler(engine)
	comps := handlers.NewCompetitionHandler(engine)

	r := chi.NewRouter()
	r.Get("/api/competitions", comps.GetAll)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminBasicAuth(adminUser, adminPass))
		r.Get("/admin/competitions", admin.List)
		r.Post("/admin/competitions", admin.Create)
		r.Put("/admin/competitions/{id}", admin.Update)
		r.Delete("/admin/competitions/{id}", admin.Delete)
	})
	return r
}

func adminRequest(t *testing.T, router http.Handler, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.SetBasicAuth(adminUser, adminPass)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestAdminGateChallengesWithoutCredentials(t *testing.T) {
	router := newAdminRouter(&memStore{catalog: models.DefaultCatalog()})

	rec := adminRequest(t, router, http.MethodGet, "/admin/competitions", nil, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, `Basic realm="Login Required"`, rec.Header().Get("WWW-Authenticate"))
}

func TestAdminGateRejectsWrongPassword(t *testing.T) {
	router := newAdminRouter(&memStore{catalog: models.DefaultCatalog()})

	req := httptest.NewRequest(http.MethodGet, "/admin/competitions", nil)
	req.SetBasicAuth(adminUser, "nope")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCreateCompetition(t *testing.T) {
	store := &memStore{catalog: models.DefaultCatalog()}
	router := newAdminRouter(store)

	rec := adminRequest(t, router, http.MethodPost, "/admin/competitions", map[string]string{
		"category":    "Sports",
		"subcategory": "Running",
		"name":        "5K Run",
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "1", body["id"])
	require.Equal(t, "Competition added", body["message"])
	require.Equal(t, "5K Run", store.catalog["sports"]["running"][0].Name)
}

func TestAdminCreateMissingName(t *testing.T) {
	router := newAdminRouter(&memStore{catalog: models.DefaultCatalog()})

	rec := adminRequest(t, router, http.MethodPost, "/admin/competitions", map[string]string{
		"category":    "sports",
		"subcategory": "running",
	}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeBody(t, rec), "error")
}

func TestAdminUpdateSubsetOfFields(t *testing.T) {
	store := &memStore{catalog: models.Catalog{
		"sports": {"running": []models.Competition{
			{ID: "1", Name: "5K Run", Location: "Riverside Park"},
		}},
	}}
	router := newAdminRouter(store)

	rec := adminRequest(t, router, http.MethodPut, "/admin/competitions/1", map[string]string{
		"name": "10K Run",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Competition updated", decodeBody(t, rec)["message"])

	comp := store.catalog["sports"]["running"][0]
	require.Equal(t, "10K Run", comp.Name)
	require.Equal(t, "Riverside Park", comp.Location)
}

func TestAdminUpdateUnknownID(t *testing.T) {
	router := newAdminRouter(&memStore{catalog: models.DefaultCatalog()})

	rec := adminRequest(t, router, http.MethodPut, "/admin/competitions/42", map[string]string{"name": "x"}, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Competition not found", decodeBody(t, rec)["error"])
}

func TestAdminDeletePrunesBuckets(t *testing.T) {
	store := &memStore{catalog: models.Catalog{
		"sports": {"running": []models.Competition{{ID: "1", Name: "5K Run"}}},
	}}
	router := newAdminRouter(store)

	rec := adminRequest(t, router, http.MethodDelete, "/admin/competitions/1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Competition deleted", decodeBody(t, rec)["message"])
	require.NotContains(t, store.catalog, "sports")
}

func TestAdminDeleteUnknownID(t *testing.T) {
	router := newAdminRouter(&memStore{catalog: models.DefaultCatalog()})

	rec := adminRequest(t, router, http.MethodDelete, "/admin/competitions/9", nil, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Competition not found", decodeBody(t, rec)["error"])
}

func TestPublicCatalogEndpoint(t *testing.T) {
	store := &memStore{catalog: models.Catalog{
		"sports": {"running": []models.Competition{{ID: "1", Name: "5K Run"}}},
	}}
	router := newAdminRouter(store)

	rec := adminRequest(t, router, http.MethodGet, "/api/competitions", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Catalog
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, "5K Run", got["sports"]["running"][0].Name)
}
