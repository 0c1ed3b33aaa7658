package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"taxi_service/internal/storage"
)

// constraintFields maps unique constraint names from the migrations to form fields.
var constraintFields = map[string]string{
	"drivers_username_key":       "username",
	"drivers_license_number_key": "license_number",
}

// translate maps gorm and PostgreSQL errors onto the storage sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		field, ok := constraintFields[pqErr.Constraint]
		if !ok {
			field = pqErr.Constraint
		}
		return &storage.DuplicateError{Field: field}
	case "foreign_key_violation":
		return fmt.Errorf("%s: %w", pqErr.Constraint, storage.ErrInvalidReference)
	}
	return err
}
