package memory

import (
	"context"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
)

type driverRepo struct {
	s *Store
}

func (r *driverRepo) Create(ctx context.Context, d *models.Driver) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUniqueLocked(0, d.Username, d.LicenseNumber); err != nil {
		return err
	}

	r.s.lastDriverID++
	d.ID = r.s.lastDriverID
	d.CreatedAt = r.s.now()
	d.UpdatedAt = d.CreatedAt
	stored := *d
	stored.Cars = nil
	r.s.drivers[d.ID] = stored
	return nil
}

func (r *driverRepo) UpdateLicense(ctx context.Context, id uint, licenseNumber string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.drivers[id]
	if !ok {
		return storage.ErrNotFound
	}
	if err := r.checkUniqueLocked(id, "", licenseNumber); err != nil {
		return err
	}
	d.LicenseNumber = licenseNumber
	d.UpdatedAt = r.s.now()
	r.s.drivers[id] = d
	return nil
}

func (r *driverRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.drivers[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.drivers, id)
	for link := range r.s.carDrivers {
		if link.DriverID == id {
			delete(r.s.carDrivers, link)
		}
	}
	return nil
}

func (r *driverRepo) GetByID(ctx context.Context, id uint) (*models.Driver, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.drivers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	d.Cars = r.s.carsOfLocked(id)
	return &d, nil
}

func (r *driverRepo) GetByUsername(ctx context.Context, username string) (*models.Driver, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.drivers {
		if d.Username == username {
			return &d, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *driverRepo) List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Driver], error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	username := c.Get(search.KeyUsername)
	var matched []models.Driver
	for _, d := range r.s.drivers {
		if username.Match(d.Username) {
			matched = append(matched, d)
		}
	}
	sortDrivers(matched)
	return pagination.Slice(matched, req), nil
}

func (r *driverRepo) All(ctx context.Context) ([]models.Driver, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Driver, 0, len(r.s.drivers))
	for _, d := range r.s.drivers {
		out = append(out, d)
	}
	sortDrivers(out)
	return out, nil
}

func (r *driverRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.drivers)), nil
}

func (r *driverRepo) ListCars(ctx context.Context, driverID uint) ([]models.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.drivers[driverID]; !ok {
		return nil, storage.ErrNotFound
	}
	return r.s.carsOfLocked(driverID), nil
}

// checkUniqueLocked enforces unique usernames and unique non-empty license numbers.
// An empty username skips the username check.
func (r *driverRepo) checkUniqueLocked(selfID uint, username, licenseNumber string) error {
	for id, d := range r.s.drivers {
		if id == selfID {
			continue
		}
		if username != "" && d.Username == username {
			return &storage.DuplicateError{Field: "username"}
		}
		if licenseNumber != "" && d.LicenseNumber == licenseNumber {
			return &storage.DuplicateError{Field: "license_number"}
		}
	}
	return nil
}
