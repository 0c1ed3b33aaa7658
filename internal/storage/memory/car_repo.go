package memory

import (
	"context"
	"fmt"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
)

type carRepo struct {
	s *Store
}

func (r *carRepo) Create(ctx context.Context, car *models.Car, driverIDs []uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := storage.UniqueIDs(driverIDs)
	if err := r.checkRefsLocked(car.ManufacturerID, ids); err != nil {
		return err
	}

	r.s.lastCarID++
	car.ID = r.s.lastCarID
	car.CreatedAt = r.s.now()
	car.UpdatedAt = car.CreatedAt
	r.s.cars[car.ID] = stripCar(*car)
	r.replaceDriversLocked(car.ID, ids)
	r.attachLocked(car)
	return nil
}

func (r *carRepo) Update(ctx context.Context, car *models.Car, driverIDs []uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.cars[car.ID]
	if !ok {
		return storage.ErrNotFound
	}
	ids := storage.UniqueIDs(driverIDs)
	if err := r.checkRefsLocked(car.ManufacturerID, ids); err != nil {
		return err
	}

	existing.Model = car.Model
	existing.ManufacturerID = car.ManufacturerID
	existing.UpdatedAt = r.s.now()
	r.s.cars[car.ID] = existing
	r.replaceDriversLocked(car.ID, ids)

	*car = existing
	r.attachLocked(car)
	return nil
}

func (r *carRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cars[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.cars, id)
	r.replaceDriversLocked(id, nil)
	return nil
}

func (r *carRepo) GetByID(ctx context.Context, id uint) (*models.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	car, ok := r.s.cars[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	r.attachLocked(&car)
	return &car, nil
}

func (r *carRepo) List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Car], error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	model := c.Get(search.KeyModel)
	maker := c.Get(search.KeyManufacturer)

	var matched []models.Car
	for _, car := range r.s.cars {
		car.Manufacturer = r.s.manufacturers[car.ManufacturerID]
		if model.Match(car.Model) && maker.Match(car.Manufacturer.Name) {
			matched = append(matched, car)
		}
	}
	sortCars(matched)
	return pagination.Slice(matched, req), nil
}

func (r *carRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.cars)), nil
}

func (r *carRepo) AddDriver(ctx context.Context, carID, driverID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cars[carID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := r.s.drivers[driverID]; !ok {
		return fmt.Errorf("driver %d: %w", driverID, storage.ErrInvalidReference)
	}
	r.s.carDrivers[models.CarDriver{CarID: carID, DriverID: driverID}] = struct{}{}
	return nil
}

func (r *carRepo) RemoveDriver(ctx context.Context, carID, driverID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cars[carID]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.carDrivers, models.CarDriver{CarID: carID, DriverID: driverID})
	return nil
}

func (r *carRepo) ListDrivers(ctx context.Context, carID uint) ([]models.Driver, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.cars[carID]; !ok {
		return nil, storage.ErrNotFound
	}
	return r.s.driversOfLocked(carID), nil
}

func (r *carRepo) checkRefsLocked(manufacturerID uint, driverIDs []uint) error {
	if _, ok := r.s.manufacturers[manufacturerID]; !ok {
		return fmt.Errorf("manufacturer %d: %w", manufacturerID, storage.ErrInvalidReference)
	}
	for _, id := range driverIDs {
		if _, ok := r.s.drivers[id]; !ok {
			return fmt.Errorf("driver %d: %w", id, storage.ErrInvalidReference)
		}
	}
	return nil
}

func (r *carRepo) replaceDriversLocked(carID uint, driverIDs []uint) {
	for link := range r.s.carDrivers {
		if link.CarID == carID {
			delete(r.s.carDrivers, link)
		}
	}
	for _, id := range driverIDs {
		r.s.carDrivers[models.CarDriver{CarID: carID, DriverID: id}] = struct{}{}
	}
}

func (r *carRepo) attachLocked(car *models.Car) {
	car.Manufacturer = r.s.manufacturers[car.ManufacturerID]
	car.Drivers = r.s.driversOfLocked(car.ID)
}

// stripCar drops loaded associations before the car is stored.
func stripCar(car models.Car) models.Car {
	car.Manufacturer = models.Manufacturer{}
	car.Drivers = nil
	return car
}
