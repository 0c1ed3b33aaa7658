package memory

import (
	"context"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
)

type manufacturerRepo struct {
	s *Store
}

func (r *manufacturerRepo) Create(ctx context.Context, m *models.Manufacturer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastManufacturerID++
	m.ID = r.s.lastManufacturerID
	m.CreatedAt = r.s.now()
	m.UpdatedAt = m.CreatedAt
	r.s.manufacturers[m.ID] = *m
	return nil
}

func (r *manufacturerRepo) Update(ctx context.Context, m *models.Manufacturer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.manufacturers[m.ID]
	if !ok {
		return storage.ErrNotFound
	}
	existing.Name = m.Name
	existing.Country = m.Country
	existing.UpdatedAt = r.s.now()
	r.s.manufacturers[m.ID] = existing
	*m = existing
	return nil
}

// Delete removes the manufacturer together with its cars.
func (r *manufacturerRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.manufacturers[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.s.manufacturers, id)
	for carID, car := range r.s.cars {
		if car.ManufacturerID != id {
			continue
		}
		delete(r.s.cars, carID)
		for link := range r.s.carDrivers {
			if link.CarID == carID {
				delete(r.s.carDrivers, link)
			}
		}
	}
	return nil
}

func (r *manufacturerRepo) GetByID(ctx context.Context, id uint) (*models.Manufacturer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.manufacturers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &m, nil
}

func (r *manufacturerRepo) List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Manufacturer], error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	name := c.Get(search.KeyName)
	var matched []models.Manufacturer
	for _, m := range r.s.manufacturers {
		if name.Match(m.Name) {
			matched = append(matched, m)
		}
	}
	sortManufacturers(matched)
	return pagination.Slice(matched, req), nil
}

func (r *manufacturerRepo) All(ctx context.Context) ([]models.Manufacturer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Manufacturer, 0, len(r.s.manufacturers))
	for _, m := range r.s.manufacturers {
		out = append(out, m)
	}
	sortManufacturers(out)
	return out, nil
}

func (r *manufacturerRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.manufacturers)), nil
}
