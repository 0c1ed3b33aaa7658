package storage

import (
	"context"
	"errors"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is matched by every *DuplicateError.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidReference is returned when a foreign key points nowhere.
	ErrInvalidReference = errors.New("invalid reference")
)

// DuplicateError reports which unique field rejected a write.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return "duplicate " + e.Field
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

type IStorage interface {
	Manufacturer() IManufacturerStorage
	Car() ICarStorage
	Driver() IDriverStorage
	Close() error
}

type IManufacturerStorage interface {
	Create(ctx context.Context, m *models.Manufacturer) error
	Update(ctx context.Context, m *models.Manufacturer) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Manufacturer, error)
	List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Manufacturer], error)
	All(ctx context.Context) ([]models.Manufacturer, error)
	Count(ctx context.Context) (int64, error)
}

// ICarStorage owns cars and the car/driver join relation.
// Create and Update replace the whole driver set in the same transaction.
type ICarStorage interface {
	Create(ctx context.Context, car *models.Car, driverIDs []uint) error
	Update(ctx context.Context, car *models.Car, driverIDs []uint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Car, error)
	List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Car], error)
	Count(ctx context.Context) (int64, error)
	AddDriver(ctx context.Context, carID, driverID uint) error
	RemoveDriver(ctx context.Context, carID, driverID uint) error
	ListDrivers(ctx context.Context, carID uint) ([]models.Driver, error)
}

type IDriverStorage interface {
	Create(ctx context.Context, d *models.Driver) error
	UpdateLicense(ctx context.Context, id uint, licenseNumber string) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Driver, error)
	GetByUsername(ctx context.Context, username string) (*models.Driver, error)
	List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Driver], error)
	All(ctx context.Context) ([]models.Driver, error)
	Count(ctx context.Context) (int64, error)
	ListCars(ctx context.Context, driverID uint) ([]models.Car, error)
}

// UniqueIDs drops zero and repeated ids, keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
