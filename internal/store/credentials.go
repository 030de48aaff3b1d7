package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shamiohaque/ueldo-backend/internal/apperrors"
	"github.com/shamiohaque/ueldo-backend/internal/models"
)

// CredentialCollection holds one document per registered phone.
const CredentialCollection = "users"

// CredentialStore persists phone -> password-hash records. Records are
// created on signup, have their hash replaced on password reset, and are
// never deleted.
type CredentialStore struct {
	col *mongo.Collection
}

// NewCredentialStore returns a store bound to the users collection of db.
func NewCredentialStore(db *mongo.Database) *CredentialStore {
	return &CredentialStore{col: db.Collection(CredentialCollection)}
}

// FindByPhone looks up the credential for a phone. Returns
// apperrors.ErrNotFound when no record exists (an absent collection behaves
// the same as no users).
func (s *CredentialStore) FindByPhone(ctx context.Context, phone string) (*models.Credential, error) {
	var cred models.Credential
	err := s.col.FindOne(ctx, bson.M{"phone": phone}).Decode(&cred)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("phone %q: %w", phone, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &cred, nil
}

// Insert stores a new credential. Returns apperrors.ErrConflict when the
// phone is already registered.
func (s *CredentialStore) Insert(ctx context.Context, cred models.Credential) error {
	count, err := s.col.CountDocuments(ctx, bson.M{"phone": cred.Phone})
	if err != nil {
		return fmt.Errorf("check credential: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("phone %q: %w", cred.Phone, apperrors.ErrConflict)
	}
	if _, err := s.col.InsertOne(ctx, cred); err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// UpdateHash replaces the stored hash for a phone wholesale. Returns
// apperrors.ErrNotFound when no record exists.
func (s *CredentialStore) UpdateHash(ctx context.Context, phone, hash string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"phone": phone}, bson.M{"$set": bson.M{"hash": hash}})
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("phone %q: %w", phone, apperrors.ErrNotFound)
	}
	return nil
}
