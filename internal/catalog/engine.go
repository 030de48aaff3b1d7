// Package catalog implements the competition catalog mutation engine: ID
// assignment, bucket placement, partial updates, and delete-with-pruning over
// the single aggregate document.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shamiohaque/ueldo-backend/internal/apperrors"
	"github.com/shamiohaque/ueldo-backend/internal/models"
)

// Store is the persistence contract the engine needs: whole-catalog load and
// whole-catalog replace-or-insert.
type Store interface {
	Load(ctx context.Context) (models.Catalog, error)
	Save(ctx context.Context, catalog models.Catalog) error
}

// Engine applies one logical catalog operation per call: load the full
// catalog, mutate in memory, persist the full catalog back.
//
// Known limitations, kept on purpose for compatibility with data produced by
// the legacy system and its importer:
//
//   - IDs are assigned as (current total competition count)+1. After a delete
//     the count shrinks, so a later create can reissue an ID that still
//     exists elsewhere in the catalog.
//   - The load-then-save cycle is two store round trips with no
//     optimistic-concurrency check. Two concurrent mutations can race and
//     the second save silently discards the first (last writer wins).
type Engine struct {
	store Store
}

// NewEngine returns an engine backed by the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// CreateInput carries the fields accepted when adding a competition. Name is
// required; everything else defaults to the empty string.
type CreateInput struct {
	Name             string
	Description      string
	Date             string
	Location         string
	ParticipantLimit string
	EntryFee         string
	Prizes           string
	Link             string
	Image            string
}

// UpdateInput carries a partial update: nil fields are left untouched,
// non-nil fields overwrite.
type UpdateInput struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Date             *string `json:"date"`
	Location         *string `json:"location"`
	ParticipantLimit *string `json:"participant_limit"`
	EntryFee         *string `json:"entry_fee"`
	Prizes           *string `json:"prizes"`
	Link             *string `json:"link"`
	Image            *string `json:"image"`
}

// GetAll returns the full catalog; when none exists yet, the default empty
// shape.
func (e *Engine) GetAll(ctx context.Context) (models.Catalog, error) {
	return e.store.Load(ctx)
}

// Create adds a competition to the (category, subcategory) bucket, creating
// the buckets when absent, and returns the assigned id. Category and
// subcategory are free text, lowercased before use.
func (e *Engine) Create(ctx context.Context, category, subcategory string, in CreateInput) (string, error) {
	if in.Name == "" {
		return "", fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}
	category = strings.ToLower(category)
	subcategory = strings.ToLower(subcategory)
	if category == "" || subcategory == "" {
		return "", fmt.Errorf("category and subcategory are required: %w", apperrors.ErrValidation)
	}

	catalog, err := e.store.Load(ctx)
	if err != nil {
		return "", err
	}

	// Legacy ID scheme: current total + 1. Not a monotonic counter; see the
	// Engine doc comment.
	id := strconv.Itoa(catalog.Count() + 1)

	comp := models.Competition{
		ID:               id,
		Name:             in.Name,
		Description:      in.Description,
		Date:             in.Date,
		Location:         in.Location,
		ParticipantLimit: in.ParticipantLimit,
		EntryFee:         in.EntryFee,
		Prizes:           in.Prizes,
		Link:             in.Link,
		Image:            in.Image,
	}

	if catalog[category] == nil {
		catalog[category] = map[string][]models.Competition{}
	}
	catalog[category][subcategory] = append(catalog[category][subcategory], comp)

	if err := e.store.Save(ctx, catalog); err != nil {
		return "", err
	}
	return id, nil
}

// Update overwrites the fields present in, leaving the rest unchanged, on
// the first competition matching id. Returns apperrors.ErrNotFound (and
// persists nothing) when no competition has that id.
func (e *Engine) Update(ctx context.Context, id string, in UpdateInput) error {
	catalog, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	category, subcategory, idx, ok := findCompetition(catalog, id)
	if !ok {
		return fmt.Errorf("competition %q: %w", id, apperrors.ErrNotFound)
	}

	comp := &catalog[category][subcategory][idx]
	apply(&comp.Name, in.Name)
	apply(&comp.Description, in.Description)
	apply(&comp.Date, in.Date)
	apply(&comp.Location, in.Location)
	apply(&comp.ParticipantLimit, in.ParticipantLimit)
	apply(&comp.EntryFee, in.EntryFee)
	apply(&comp.Prizes, in.Prizes)
	apply(&comp.Link, in.Link)
	apply(&comp.Image, in.Image)

	return e.store.Save(ctx, catalog)
}

// Delete removes the first competition matching id and prunes the
// subcategory when its list becomes empty, then the category when it has no
// subcategories left. Returns apperrors.ErrNotFound when no match.
func (e *Engine) Delete(ctx context.Context, id string) error {
	catalog, err := e.store.Load(ctx)
	if err != nil {
		return err
	}

	category, subcategory, idx, ok := findCompetition(catalog, id)
	if !ok {
		return fmt.Errorf("competition %q: %w", id, apperrors.ErrNotFound)
	}

	comps := catalog[category][subcategory]
	catalog[category][subcategory] = append(comps[:idx], comps[idx+1:]...)
	if len(catalog[category][subcategory]) == 0 {
		delete(catalog[category], subcategory)
	}
	if len(catalog[category]) == 0 {
		delete(catalog, category)
	}

	return e.store.Save(ctx, catalog)
}

// findCompetition locates the first competition with the given id. Category
// and subcategory keys are walked in sorted order so the tie-break under the
// legacy ID-collision flaw is deterministic; list entries keep insertion
// order.
func findCompetition(catalog models.Catalog, id string) (category, subcategory string, idx int, ok bool) {
	for _, cat := range sortedKeys(catalog) {
		subs := catalog[cat]
		for _, sub := range sortedKeys(subs) {
			for i, comp := range subs[sub] {
				if comp.ID == id {
					return cat, sub, i, true
				}
			}
		}
	}
	return "", "", 0, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
