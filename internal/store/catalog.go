package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shamiohaque/ueldo-backend/internal/models"
)

const (
	// CatalogCollection holds exactly one aggregate document.
	CatalogCollection = "data"
	// catalogDocID is the fixed _id of the aggregate document. The data
	// importer writes the same key, so existing deployments are readable
	// as-is.
	catalogDocID = "competitions"
)

// CatalogStore persists the whole competition catalog as a single document:
// category names are top-level keys next to _id, exactly the shape the
// legacy importer seeds. Load and Save always move the entire aggregate;
// there is no field-level partial update.
type CatalogStore struct {
	col *mongo.Collection
}

// NewCatalogStore returns a store bound to the data collection of db.
func NewCatalogStore(db *mongo.Database) *CatalogStore {
	return &CatalogStore{col: db.Collection(CatalogCollection)}
}

// Load returns the current catalog. When no aggregate document exists yet
// (first run, importer never ran) it returns the default empty shape.
func (s *CatalogStore) Load(ctx context.Context) (models.Catalog, error) {
	var raw bson.Raw
	err := s.col.FindOne(ctx, bson.M{"_id": catalogDocID}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return models.DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog, err := decodeCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// Save replaces the aggregate document with the given catalog, inserting it
// if it does not exist. The replace itself is atomic at the document level;
// the surrounding load-modify-save cycle is not (last writer wins).
func (s *CatalogStore) Save(ctx context.Context, catalog models.Catalog) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": catalogDocID}, encodeCatalog(catalog), opts)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// encodeCatalog builds the stored document: _id plus one top-level key per
// category.
func encodeCatalog(catalog models.Catalog) bson.M {
	doc := bson.M{"_id": catalogDocID}
	for category, subs := range catalog {
		doc[category] = subs
	}
	return doc
}

// decodeCatalog converts a stored document back into a catalog, dropping the
// _id bookkeeping key so it is never part of the observable shape.
func decodeCatalog(raw bson.Raw) (models.Catalog, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, err
	}
	catalog := models.Catalog{}
	for _, el := range elems {
		key := el.Key()
		if key == "_id" {
			continue
		}
		var subs map[string][]models.Competition
		if err := el.Value().Unmarshal(&subs); err != nil {
			return nil, fmt.Errorf("category %q: %w", key, err)
		}
		if subs == nil {
			subs = map[string][]models.Competition{}
		}
		catalog[key] = subs
	}
	return catalog, nil
}
