package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shamiohaque/ueldo-backend/internal/apperrors"
	"github.com/shamiohaque/ueldo-backend/internal/models"
	"github.com/shamiohaque/ueldo-backend/internal/services"
)

type memCreds struct {
	records map[string]string // phone -> hash
}

func newMemCreds() *memCreds {
	return &memCreds{records: map[string]string{}}
}

func (s *memCreds) FindByPhone(ctx context.Context, phone string) (*models.Credential, error) {
	hash, ok := s.records[phone]
	if !ok {
		return nil, fmt.Errorf("phone %q: %w", phone, apperrors.ErrNotFound)
	}
	return &models.Credential{Phone: phone, Hash: hash}, nil
}

func (s *memCreds) Insert(ctx context.Context, cred models.Credential) error {
	if _, ok := s.records[cred.Phone]; ok {
		return fmt.Errorf("phone %q: %w", cred.Phone, apperrors.ErrConflict)
	}
	s.records[cred.Phone] = cred.Hash
	return nil
}

func (s *memCreds) UpdateHash(ctx context.Context, phone, hash string) error {
	if _, ok := s.records[phone]; !ok {
		return fmt.Errorf("phone %q: %w", phone, apperrors.ErrNotFound)
	}
	s.records[phone] = hash
	return nil
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	creds := newMemCreds()
	svc := services.NewAccountService(creds)

	require.NoError(t, svc.Signup(context.Background(), "0171", "hunter2"))
	require.NotEqual(t, "hunter2", creds.records["0171"])
	require.NotEmpty(t, creds.records["0171"])
}

func TestSignupValidation(t *testing.T) {
	svc := services.NewAccountService(newMemCreds())

	require.ErrorIs(t, svc.Signup(context.Background(), "", "pw"), apperrors.ErrValidation)
	require.ErrorIs(t, svc.Signup(context.Background(), "0171", ""), apperrors.ErrValidation)
}

func TestSignupConflictLeavesHashIntact(t *testing.T) {
	creds := newMemCreds()
	svc := services.NewAccountService(creds)

	require.NoError(t, svc.Signup(context.Background(), "0171", "first"))
	before := creds.records["0171"]

	err := svc.Signup(context.Background(), "0171", "second")
	require.ErrorIs(t, err, apperrors.ErrConflict)
	require.Equal(t, before, creds.records["0171"])
}

func TestLoginOutcomes(t *testing.T) {
	creds := newMemCreds()
	svc := services.NewAccountService(creds)
	require.NoError(t, svc.Signup(context.Background(), "0171", "hunter2"))

	require.NoError(t, svc.Login(context.Background(), "0171", "hunter2"))
	require.ErrorIs(t, svc.Login(context.Background(), "0171", "wrong"), apperrors.ErrAuth)
	require.ErrorIs(t, svc.Login(context.Background(), "9999", "hunter2"), apperrors.ErrAuth)
}

func TestBeginResetUnknownPhone(t *testing.T) {
	svc := services.NewAccountService(newMemCreds())
	require.ErrorIs(t, svc.BeginReset(context.Background(), "9999"), apperrors.ErrNotFound)
}

func TestCompleteResetReplacesHash(t *testing.T) {
	creds := newMemCreds()
	svc := services.NewAccountService(creds)
	require.NoError(t, svc.Signup(context.Background(), "0171", "oldpass"))
	before := creds.records["0171"]

	require.NoError(t, svc.CompleteReset(context.Background(), "0171", "newpass"))
	require.NotEqual(t, before, creds.records["0171"])

	require.ErrorIs(t, svc.Login(context.Background(), "0171", "oldpass"), apperrors.ErrAuth)
	require.NoError(t, svc.Login(context.Background(), "0171", "newpass"))
}
