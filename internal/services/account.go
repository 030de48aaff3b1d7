package services

import (
	"context"
	"fmt"

	"github.com/shamiohaque/ueldo-backend/internal/apperrors"
	"github.com/shamiohaque/ueldo-backend/internal/models"
	"github.com/shamiohaque/ueldo-backend/pkg/utils"
)

// CredentialStore is the persistence contract the account service needs.
type CredentialStore interface {
	FindByPhone(ctx context.Context, phone string) (*models.Credential, error)
	Insert(ctx context.Context, cred models.Credential) error
	UpdateHash(ctx context.Context, phone, hash string) error
}

// AccountService implements signup, login checks, and the two-step password
// reset over the credential store. It never sees stored plaintext; hashing
// and verification go through the opaque utils pair.
type AccountService struct {
	creds CredentialStore
}

// NewAccountService returns a service over the given credential store.
func NewAccountService(creds CredentialStore) *AccountService {
	return &AccountService{creds: creds}
}

// Signup registers a phone. Fails with apperrors.ErrValidation on blank
// input and apperrors.ErrConflict when the phone is already registered.
func (s *AccountService) Signup(ctx context.Context, phone, password string) error {
	if phone == "" || password == "" {
		return fmt.Errorf("phone and password are required: %w", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.creds.Insert(ctx, models.Credential{Phone: phone, Hash: hash})
}

// Login verifies a phone/password pair. Unknown phone and wrong password
// both fail with apperrors.ErrAuth, indistinguishably.
func (s *AccountService) Login(ctx context.Context, phone, password string) error {
	cred, err := s.creds.FindByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("%w", apperrors.ErrAuth)
	}
	ok, err := utils.VerifyPassword(password, cred.Hash)
	if err != nil || !ok {
		return fmt.Errorf("%w", apperrors.ErrAuth)
	}
	return nil
}

// BeginReset checks that phone has a record; the caller then mints the
// pending-reset identity. Fails with apperrors.ErrNotFound on unknown phone.
func (s *AccountService) BeginReset(ctx context.Context, phone string) error {
	_, err := s.creds.FindByPhone(ctx, phone)
	return err
}

// CompleteReset replaces the stored hash for phone wholesale. The caller is
// responsible for having validated the pending-reset identity first.
func (s *AccountService) CompleteReset(ctx context.Context, phone, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("password is required: %w", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.creds.UpdateHash(ctx, phone, hash)
}
