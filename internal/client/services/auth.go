// Package services contains application services for the gophtodo client.
// This file defines the credential store: registration, login/logout, the
// persisted session marker, and ownership of every user's todo list and id
// counter.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/storage"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// Storage keys. The whole user table lives under usersKey as one JSON value;
// the session marker is the raw username under currentUserKey.
const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// MinPasswordLength is the registration password floor.
const MinPasswordLength = 4

// AuthService is the credential store. It owns the username →
// {password, todos, nextId} table and the single "currently logged in"
// marker, both persisted through the key-value repository.
//
// Contract:
//   - Register: create a user record; does NOT log the new user in.
//   - Login / Logout: set or clear the session, in memory and on disk.
//   - CurrentUser: cached session username, lazily rehydrated from disk so
//     a restart lands back in the logged-in state.
//   - UserTodos / SaveTodos / NextID: access to the current user's list and
//     counter; all of them degrade to harmless no-ops without a session.
//   - DeleteAccount: remove the current user's record and the session
//     marker in one transaction.
//
// Passwords are stored in plaintext and checked by exact equality. That is
// preserved observed behavior of the system this replaces, not a
// recommendation.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)
	UserTodos(ctx context.Context) ([]models.TodoItem, error)
	SaveTodos(ctx context.Context, todos []models.TodoItem) error
	NextID(ctx context.Context) (int64, error)
	DeleteAccount(ctx context.Context) error
}

// authService is the concrete AuthService backed by a local SQL database.
// The user table is loaded lazily on first touch and written back in full
// on every mutation.
type authService struct {
	db     *sql.DB
	logger logging.Logger

	users       models.UserTable
	usersLoaded bool
	currentUser string
}

// NewAuthService constructs an AuthService bound to the given database.
func NewAuthService(db *sql.DB, logger logging.Logger) AuthService {
	return &authService{db: db, logger: logger.With("component", "auth")}
}

func (a *authService) getStorageRepo() storage.Repository {
	return storage.NewSQLiteRepository(a.db)
}

// loadUsers reads the user table from storage on first use. A missing key
// means a fresh installation and yields an empty table.
func (a *authService) loadUsers(ctx context.Context) error {
	if a.usersLoaded {
		return nil
	}

	data, err := a.getStorageRepo().Get(ctx, usersKey)
	if err != nil {
		return fmt.Errorf("failed to load user table: %w", err)
	}

	table := models.UserTable{}
	if data != nil {
		if err := json.Unmarshal(data, &table); err != nil {
			return fmt.Errorf("failed to decode user table: %w", err)
		}
	}

	a.users = table
	a.usersLoaded = true
	return nil
}

// saveUsers serializes the whole table and writes it through to storage.
func (a *authService) saveUsers(ctx context.Context) error {
	data, err := json.Marshal(a.users)
	if err != nil {
		return fmt.Errorf("failed to encode user table: %w", err)
	}
	if err := a.getStorageRepo().Set(ctx, usersKey, data); err != nil {
		return fmt.Errorf("failed to save user table: %w", err)
	}
	return nil
}

// Register creates a new user record with an empty todo list and the id
// counter at 1. The new user is not logged in; callers decide that.
//
// Fails with common.ErrDuplicateUser for a taken username,
// common.ErrWeakPassword for a password shorter than MinPasswordLength,
// and common.ErrValidation for a blank username.
func (a *authService) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return common.ErrValidation
	}

	if err := a.loadUsers(ctx); err != nil {
		return err
	}

	if _, exists := a.users[username]; exists {
		return common.ErrDuplicateUser
	}

	if len(password) < MinPasswordLength {
		return common.ErrWeakPassword
	}

	a.users[username] = &models.UserRecord{
		Password: password,
		Todos:    []models.TodoItem{},
		NextID:   1,
	}

	if err := a.saveUsers(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// Login checks the credential by exact equality and, on success, sets the
// session both in memory and in storage. An unknown username and a wrong
// password are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, username, password string) error {
	if err := a.loadUsers(ctx); err != nil {
		return err
	}

	user, ok := a.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return common.ErrInvalidCredentials
	}

	if err := a.getStorageRepo().Set(ctx, currentUserKey, []byte(username)); err != nil {
		return fmt.Errorf("failed to save session marker: %w", err)
	}

	a.currentUser = username
	a.logger.Info(ctx, "user logged in", "username", username)
	return nil
}

// Logout clears the session marker, in memory and in storage.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.getStorageRepo().Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("failed to clear session marker: %w", err)
	}

	a.currentUser = ""
	a.logger.Info(ctx, "user logged out")
	return nil
}

// CurrentUser returns the logged-in username, or "" when there is none.
// When the in-memory value is empty it re-reads the persisted marker, which
// is what makes "already logged in" detection work across restarts. Only a
// found value is cached.
func (a *authService) CurrentUser(ctx context.Context) (string, error) {
	if a.currentUser != "" {
		return a.currentUser, nil
	}

	data, err := a.getStorageRepo().Get(ctx, currentUserKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session marker: %w", err)
	}

	a.currentUser = string(data)
	return a.currentUser, nil
}

// UserTodos returns a copy of the current user's todo list. With no session
// or a missing record it returns an empty list rather than an error.
func (a *authService) UserTodos(ctx context.Context) ([]models.TodoItem, error) {
	username, err := a.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return []models.TodoItem{}, nil
	}

	if err := a.loadUsers(ctx); err != nil {
		return nil, err
	}

	user, ok := a.users[username]
	if !ok {
		return []models.TodoItem{}, nil
	}

	todos := make([]models.TodoItem, len(user.Todos))
	copy(todos, user.Todos)
	return todos, nil
}

// SaveTodos replaces the current user's todo list wholesale and persists the
// whole table. A no-op when nobody is logged in.
func (a *authService) SaveTodos(ctx context.Context, todos []models.TodoItem) error {
	username, err := a.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if username == "" {
		return nil
	}

	if err := a.loadUsers(ctx); err != nil {
		return err
	}

	user, ok := a.users[username]
	if !ok {
		return nil
	}

	user.Todos = todos
	return a.saveUsers(ctx)
}

// NextID returns the current user's counter value and increments the
// persisted counter. Without a session it returns 1 without persisting
// anything; that id is not durable, which is a known quirk kept on purpose.
func (a *authService) NextID(ctx context.Context) (int64, error) {
	username, err := a.CurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	if username == "" {
		return 1, nil
	}

	if err := a.loadUsers(ctx); err != nil {
		return 0, err
	}

	user, ok := a.users[username]
	if !ok {
		return 1, nil
	}

	id := user.NextID
	if id == 0 {
		id = 1
	}
	user.NextID = id + 1

	if err := a.saveUsers(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteAccount removes the current user's record and clears the session
// marker atomically. Fails with common.ErrNoSession when nobody is logged in.
func (a *authService) DeleteAccount(ctx context.Context) error {
	username, err := a.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if username == "" {
		return common.ErrNoSession
	}

	if err := a.loadUsers(ctx); err != nil {
		return err
	}

	remaining := make(models.UserTable, len(a.users))
	for name, rec := range a.users {
		if name != username {
			remaining[name] = rec
		}
	}

	data, err := json.Marshal(remaining)
	if err != nil {
		return fmt.Errorf("failed to encode user table: %w", err)
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, usersKey, data); err != nil {
			return err
		}
		return repo.Delete(ctx, currentUserKey)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	a.users = remaining
	a.currentUser = ""
	a.logger.Info(ctx, "account deleted", "username", username)
	return nil
}
