package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
)

type carRepo struct {
	db *gorm.DB
}

func (r *carRepo) Create(ctx context.Context, car *models.Car, driverIDs []uint) error {
	ids := storage.UniqueIDs(driverIDs)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(car).Error; err != nil {
			return err
		}
		return replaceDrivers(tx, car.ID, ids)
	})
	if err != nil {
		return fmt.Errorf("create car: %w", translate(err))
	}
	return r.attach(ctx, car)
}

func (r *carRepo) Update(ctx context.Context, car *models.Car, driverIDs []uint) error {
	ids := storage.UniqueIDs(driverIDs)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Car{}).
			Where("id = ?", car.ID).
			Updates(map[string]interface{}{"model": car.Model, "manufacturer_id": car.ManufacturerID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storage.ErrNotFound
		}
		return replaceDrivers(tx, car.ID, ids)
	})
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("update car %d: %w", car.ID, translate(err))
	}

	updated, err := r.GetByID(ctx, car.ID)
	if err != nil {
		return err
	}
	*car = *updated
	return nil
}

func (r *carRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Car{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete car %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *carRepo) GetByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).Preload("Manufacturer").First(&car, id).Error; err != nil {
		return nil, translate(err)
	}
	drivers, err := driversOf(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	car.Drivers = drivers
	return &car, nil
}

func (r *carRepo) List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Car], error) {
	db := r.db.WithContext(ctx)
	q := db.Model(&models.Car{})
	if f := c.Get(search.KeyModel); f.Active() {
		q = q.Where("cars.model ILIKE ?", f.Pattern())
	}
	if f := c.Get(search.KeyManufacturer); f.Active() {
		makers := db.Model(&models.Manufacturer{}).Select("id").Where("name ILIKE ?", f.Pattern())
		q = q.Where("cars.manufacturer_id IN (?)", makers)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return pagination.Page[models.Car]{}, fmt.Errorf("count cars: %w", err)
	}
	w := pagination.Resolve(total, req)

	var items []models.Car
	err := q.Preload("Manufacturer").
		Order("cars.id").
		Offset(w.Offset).
		Limit(w.Limit()).
		Find(&items).Error
	if err != nil {
		return pagination.Page[models.Car]{}, fmt.Errorf("list cars: %w", err)
	}
	return pagination.NewPage(items, w), nil
}

func (r *carRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Car{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return n, nil
}

func (r *carRepo) AddDriver(ctx context.Context, carID, driverID uint) error {
	db := r.db.WithContext(ctx)
	if err := r.exists(db, carID); err != nil {
		return err
	}
	link := models.CarDriver{CarID: carID, DriverID: driverID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("assign driver %d to car %d: %w", driverID, carID, translate(err))
	}
	return nil
}

func (r *carRepo) RemoveDriver(ctx context.Context, carID, driverID uint) error {
	db := r.db.WithContext(ctx)
	if err := r.exists(db, carID); err != nil {
		return err
	}
	err := db.Where("car_id = ? AND driver_id = ?", carID, driverID).Delete(&models.CarDriver{}).Error
	if err != nil {
		return fmt.Errorf("unassign driver %d from car %d: %w", driverID, carID, err)
	}
	return nil
}

func (r *carRepo) ListDrivers(ctx context.Context, carID uint) ([]models.Driver, error) {
	db := r.db.WithContext(ctx)
	if err := r.exists(db, carID); err != nil {
		return nil, err
	}
	return driversOf(db, carID)
}

func (r *carRepo) exists(db *gorm.DB, carID uint) error {
	var n int64
	if err := db.Model(&models.Car{}).Where("id = ?", carID).Count(&n).Error; err != nil {
		return fmt.Errorf("lookup car %d: %w", carID, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// attach loads the manufacturer and driver set of a freshly written car.
func (r *carRepo) attach(ctx context.Context, car *models.Car) error {
	loaded, err := r.GetByID(ctx, car.ID)
	if err != nil {
		return err
	}
	car.Manufacturer = loaded.Manufacturer
	car.Drivers = loaded.Drivers
	return nil
}

// replaceDrivers makes driverIDs the exact driver set of carID.
func replaceDrivers(tx *gorm.DB, carID uint, driverIDs []uint) error {
	if err := tx.Where("car_id = ?", carID).Delete(&models.CarDriver{}).Error; err != nil {
		return err
	}
	if len(driverIDs) == 0 {
		return nil
	}
	links := make([]models.CarDriver, 0, len(driverIDs))
	for _, id := range driverIDs {
		links = append(links, models.CarDriver{CarID: carID, DriverID: id})
	}
	return tx.Create(&links).Error
}

func driversOf(db *gorm.DB, carID uint) ([]models.Driver, error) {
	drivers := []models.Driver{}
	err := db.Joins("JOIN car_drivers ON car_drivers.driver_id = drivers.id").
		Where("car_drivers.car_id = ?", carID).
		Order("drivers.username, drivers.id").
		Find(&drivers).Error
	if err != nil {
		return nil, fmt.Errorf("drivers of car %d: %w", carID, err)
	}
	return drivers, nil
}

func carsOf(db *gorm.DB, driverID uint) ([]models.Car, error) {
	cars := []models.Car{}
	err := db.Preload("Manufacturer").
		Joins("JOIN car_drivers ON car_drivers.car_id = cars.id").
		Where("car_drivers.driver_id = ?", driverID).
		Order("cars.id").
		Find(&cars).Error
	if err != nil {
		return nil, fmt.Errorf("cars of driver %d: %w", driverID, err)
	}
	return cars, nil
}
