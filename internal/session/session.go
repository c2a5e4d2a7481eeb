// Package session implements the local account and session lifecycle: a
// single user record and an opaque session token, both persisted in the
// key-value store under the "user" and "token" keys.
//
// Login deliberately matches on email only. The stored record carries no
// credential secret, so there is nothing to compare the password against;
// Register and UpdateProfile accept a password argument and never persist
// it. Hardening this would change the observable contract, so it is left
// as is on purpose.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
)

// User is the persisted identity. The password is never part of it.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

const (
	userKey  = "user"
	tokenKey = "token"

	// random bytes per session token; the literal value is meaningless,
	// only presence of the key gates Restore.
	tokenBytes = 16
)

// Service defines the session operations available to the UI layer.
//
// Contract:
//   - Register: persist a new user record (overwriting any previous one)
//     together with a fresh session token.
//   - Login: match the supplied email against the stored record and persist
//     a fresh session token.
//   - Logout: remove the session token; the user record survives.
//   - UpdateProfile: overwrite email/username of the stored record.
//   - Restore: return the stored user iff both token and record exist.
//
// All methods must honor context cancellation at the store boundary.
type Service interface {
	Register(ctx context.Context, email, password, username string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, email, username, password string) (*User, error)
	Restore(ctx context.Context) (*User, error)
}

// store is the concrete Service backed by a kv.Store.
type store struct {
	kv  kv.Store
	log logging.Logger
}

// NewStore constructs a Service bound to the given key-value store.
func NewStore(kvStore kv.Store, log logging.Logger) Service {
	return &store{kv: kvStore, log: log}
}

// Register persists the user record and a fresh session token in a single
// transaction and returns the record. Registering twice simply replaces the
// previous account; no uniqueness or format validation is performed.
// The password argument is accepted and discarded.
func (s *store) Register(ctx context.Context, email, password, username string) (*User, error) {
	user := &User{Email: email, Username: username}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	token, err := common.MakeRandHexString(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	err = s.kv.WithTx(ctx, func(ctx context.Context, r kv.Repository) error {
		if err := r.Set(ctx, userKey, data); err != nil {
			return err
		}
		return r.Set(ctx, tokenKey, []byte(token))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.log.Info(ctx, "registered user", "email", user.Email)
	return user, nil
}

// Login loads the stored record and persists a fresh session token.
// It fails with common.ErrNotFound when no record exists and with
// common.ErrInvalidCredentials when the email differs from the stored one.
// The password is not compared against anything.
func (s *store) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user does not exist: %w", common.ErrNotFound)
	}

	if user.Email != email {
		return nil, common.ErrInvalidCredentials
	}

	token, err := common.MakeRandHexString(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.kv.Set(ctx, tokenKey, []byte(token)); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.log.Info(ctx, "logged in", "email", user.Email)
	return user, nil
}

// Logout deletes only the session token; the user record stays persisted,
// so a later Login with the same email still succeeds.
func (s *store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// UpdateProfile overwrites the stored record's email and username
// unconditionally and returns the updated record. The password argument is
// accepted and discarded.
func (s *store) UpdateProfile(ctx context.Context, email, username, password string) (*User, error) {
	user := &User{Email: email, Username: username}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.kv.Set(ctx, userKey, data); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.log.Info(ctx, "profile updated", "email", user.Email)
	return user, nil
}

// Restore returns the stored user when both a session token and a user
// record are present, and nil otherwise. A token without a resolvable user
// record does not authenticate.
func (s *store) Restore(ctx context.Context) (*User, error) {
	token, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if token == nil {
		return nil, nil
	}

	user, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn(ctx, "session token present without user record")
		return nil, nil
	}

	s.log.Debug(ctx, "session restored", "email", user.Email)
	return user, nil
}

func (s *store) loadUser(ctx context.Context) (*User, error) {
	data, err := s.kv.Get(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
