package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taxi_service/internal/storage"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translate(nil))
	})

	t.Run("record not found", func(t *testing.T) {
		err := translate(fmt.Errorf("first: %w", gorm.ErrRecordNotFound))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("unique violation on username", func(t *testing.T) {
		err := translate(&pq.Error{Code: "23505", Constraint: "drivers_username_key"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
		var derr *storage.DuplicateError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "username", derr.Field)
	})

	t.Run("unique violation on license number", func(t *testing.T) {
		err := translate(&pq.Error{Code: "23505", Constraint: "drivers_license_number_key"})
		var derr *storage.DuplicateError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "license_number", derr.Field)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := translate(&pq.Error{Code: "23503", Constraint: "car_drivers_driver_id_fkey"})
		assert.ErrorIs(t, err, storage.ErrInvalidReference)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		assert.Same(t, boom, translate(boom))

		syntax := &pq.Error{Code: "42601"}
		assert.Equal(t, error(syntax), translate(syntax))
	})
}
