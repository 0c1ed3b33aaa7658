package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
)

type driverRepo struct {
	db *gorm.DB
}

func (r *driverRepo) Create(ctx context.Context, d *models.Driver) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create driver: %w", translate(err))
	}
	return nil
}

func (r *driverRepo) UpdateLicense(ctx context.Context, id uint, licenseNumber string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Driver{}).
		Where("id = ?", id).
		Update("license_number", licenseNumber)
	if res.Error != nil {
		return fmt.Errorf("update license of driver %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to drop the driver's car assignments.
func (r *driverRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Driver{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete driver %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *driverRepo) GetByID(ctx context.Context, id uint) (*models.Driver, error) {
	db := r.db.WithContext(ctx)
	var d models.Driver
	if err := db.First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	cars, err := carsOf(db, id)
	if err != nil {
		return nil, err
	}
	d.Cars = cars
	return &d, nil
}

func (r *driverRepo) GetByUsername(ctx context.Context, username string) (*models.Driver, error) {
	var d models.Driver
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&d).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *driverRepo) List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Driver], error) {
	q := r.db.WithContext(ctx).Model(&models.Driver{})
	if f := c.Get(search.KeyUsername); f.Active() {
		q = q.Where("username ILIKE ?", f.Pattern())
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return pagination.Page[models.Driver]{}, fmt.Errorf("count drivers: %w", err)
	}
	w := pagination.Resolve(total, req)

	var items []models.Driver
	err := q.Order("username, id").Offset(w.Offset).Limit(w.Limit()).Find(&items).Error
	if err != nil {
		return pagination.Page[models.Driver]{}, fmt.Errorf("list drivers: %w", err)
	}
	return pagination.NewPage(items, w), nil
}

func (r *driverRepo) All(ctx context.Context) ([]models.Driver, error) {
	var items []models.Driver
	if err := r.db.WithContext(ctx).Order("username, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("all drivers: %w", err)
	}
	return items, nil
}

func (r *driverRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Driver{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count drivers: %w", err)
	}
	return n, nil
}

func (r *driverRepo) ListCars(ctx context.Context, driverID uint) ([]models.Car, error) {
	db := r.db.WithContext(ctx)
	var n int64
	if err := db.Model(&models.Driver{}).Where("id = ?", driverID).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("lookup driver %d: %w", driverID, err)
	}
	if n == 0 {
		return nil, storage.ErrNotFound
	}
	return carsOf(db, driverID)
}
