package storage

import (
	"context"
	"errors"
	"fmt"

	"taxi_service/internal/models"
)

// EnsureDriver creates a login account with the given credentials unless the
// username is already taken. It reports whether an account was created.
func EnsureDriver(ctx context.Context, s IStorage, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	_, err := s.Driver().GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("lookup %q: %w", username, err)
	}

	driver := models.Driver{Username: username}
	if err := driver.SetPassword(password); err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.Driver().Create(ctx, &driver); err != nil {
		return false, fmt.Errorf("create %q: %w", username, err)
	}
	return true, nil
}
