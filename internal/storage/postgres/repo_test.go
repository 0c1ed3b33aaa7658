package postgres_test

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
	"taxi_service/internal/storage/postgres"
)

// newMockStore runs the gorm repositories over sqlmock. Default write
// transactions are skipped so expectations list only the statements that matter.
func newMockStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})
	return postgres.New(db), mock
}

// sqlLike matches a statement containing every fragment, in order.
func sqlLike(fragments ...string) string {
	quoted := make([]string, len(fragments))
	for i, f := range fragments {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return strings.Join(quoted, ".*")
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestManufacturerList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("escaped filter with offset and limit", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)

		mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "manufacturers" WHERE name ILIKE $1`)).
			WithArgs(`%50\%%`).
			WillReturnRows(countRows(11))
		mock.ExpectQuery(sqlLike(`SELECT * FROM "manufacturers" WHERE name ILIKE $1 ORDER BY name, id LIMIT $2 OFFSET $3`)).
			WithArgs(`%50\%%`, 5, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}).
				AddRow(6, "50% Motors", "Test country"))

		c := search.Manufacturers(url.Values{"name": {"50%"}})
		page, err := s.Manufacturer().List(ctx, c, pagination.Request{Number: 2, Size: 5})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "50% Motors", page.Items[0].Name)
		assert.Equal(t, 2, page.Pagination.Number)
		assert.Equal(t, 3, page.Pagination.NumPages)
		assert.True(t, page.Pagination.IsPaginated)
	})

	t.Run("page past the end reads the last page", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)

		mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "manufacturers"`)).
			WillReturnRows(countRows(11))
		mock.ExpectQuery(sqlLike(`SELECT * FROM "manufacturers" ORDER BY name, id LIMIT $1 OFFSET $2`)).
			WithArgs(5, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}).
				AddRow(11, "Test 9", "Test country"))

		page, err := s.Manufacturer().List(ctx, search.Manufacturers(url.Values{}), pagination.Request{Number: 99, Size: 5})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 3, page.Pagination.Number)
		assert.False(t, page.Pagination.HasNext)
	})
}

func TestCarListCombinesFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectQuery(sqlLike(
		`SELECT count(*) FROM "cars" WHERE cars.model ILIKE $1 AND cars.manufacturer_id IN (SELECT`,
		`FROM "manufacturers" WHERE name ILIKE $2)`,
	)).
		WithArgs("%1%", "%bm%").
		WillReturnRows(countRows(1))
	mock.ExpectQuery(sqlLike(
		`SELECT * FROM "cars" WHERE cars.model ILIKE $1 AND cars.manufacturer_id IN (SELECT`,
		`FROM "manufacturers" WHERE name ILIKE $2) ORDER BY cars.id LIMIT $3`,
	)).
		WithArgs("%1%", "%bm%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "manufacturer_id"}).
			AddRow(3, "Test model 1", 2))
	mock.ExpectQuery(sqlLike(`SELECT * FROM "manufacturers" WHERE "manufacturers"."id" = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}).
			AddRow(2, "BMW", "Germany"))

	c := search.Cars(url.Values{"model": {"1"}, "manufacturer": {"bm"}})
	page, err := s.Car().List(ctx, c, pagination.Request{Number: 1, Size: 5})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Test model 1", page.Items[0].Model)
	assert.Equal(t, "BMW", page.Items[0].Manufacturer.Name)
	assert.False(t, page.Pagination.IsPaginated)
}

func TestDriverListOrdersByUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "drivers" WHERE username ILIKE $1`)).
		WithArgs("%test%").
		WillReturnRows(countRows(0))
	mock.ExpectQuery(sqlLike(`SELECT * FROM "drivers" WHERE username ILIKE $1 ORDER BY username, id LIMIT $2`)).
		WithArgs("%test%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	page, err := s.Driver().List(ctx, search.Drivers(url.Values{"username": {" test "}}), pagination.Request{Number: 4, Size: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Pagination.Number)
	assert.Equal(t, 1, page.Pagination.NumPages)
}

func TestCarCreateRollsBackOnUnknownDriver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlLike(`INSERT INTO "cars"`, `RETURNING "id"`)).
		WithArgs("Test model", 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(sqlLike(`DELETE FROM "car_drivers" WHERE car_id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(sqlLike(`INSERT INTO "car_drivers" ("car_id","driver_id") VALUES ($1,$2),($3,$4)`)).
		WithArgs(7, 1, 7, 2).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "car_drivers_driver_id_fkey"})
	mock.ExpectRollback()

	car := models.Car{Model: "Test model", ManufacturerID: 2}
	err := s.Car().Create(ctx, &car, []uint{1, 2, 1})
	assert.ErrorIs(t, err, storage.ErrInvalidReference)
}

func TestCarUpdateMissingRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(sqlLike(`UPDATE "cars" SET`, `WHERE id = $4`)).
		WithArgs(2, "New model", sqlmock.AnyArg(), 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	car := models.Car{ID: 9, Model: "New model", ManufacturerID: 2}
	err := s.Car().Update(ctx, &car, []uint{1})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCarAddDriverIgnoresExistingLink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("insert skips conflicts", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)

		mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "cars" WHERE id = $1`)).
			WithArgs(7).
			WillReturnRows(countRows(1))
		mock.ExpectExec(sqlLike(`INSERT INTO "car_drivers" ("car_id","driver_id") VALUES ($1,$2) ON CONFLICT DO NOTHING`)).
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, s.Car().AddDriver(ctx, 7, 3))
	})

	t.Run("missing car", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)

		mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "cars" WHERE id = $1`)).
			WithArgs(8).
			WillReturnRows(countRows(0))

		assert.ErrorIs(t, s.Car().AddDriver(ctx, 8, 3), storage.ErrNotFound)
	})
}
