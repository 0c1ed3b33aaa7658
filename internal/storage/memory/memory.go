// Package memory is a process-local implementation of the storage interfaces.
// It keeps the same ordering, filtering and referential rules as the postgres store.
package memory

import (
	"sort"
	"sync"
	"time"

	"taxi_service/internal/models"
	"taxi_service/internal/storage"
)

type Store struct {
	mu            sync.RWMutex
	manufacturers map[uint]models.Manufacturer
	cars          map[uint]models.Car
	drivers       map[uint]models.Driver
	carDrivers    map[models.CarDriver]struct{}

	lastManufacturerID uint
	lastCarID          uint
	lastDriverID       uint

	now func() time.Time
}

func New() *Store {
	return &Store{
		manufacturers: make(map[uint]models.Manufacturer),
		cars:          make(map[uint]models.Car),
		drivers:       make(map[uint]models.Driver),
		carDrivers:    make(map[models.CarDriver]struct{}),
		now:           time.Now,
	}
}

func (s *Store) Manufacturer() storage.IManufacturerStorage { return &manufacturerRepo{s: s} }
func (s *Store) Car() storage.ICarStorage                   { return &carRepo{s: s} }
func (s *Store) Driver() storage.IDriverStorage             { return &driverRepo{s: s} }

func (s *Store) Close() error { return nil }

// driversOfLocked returns the drivers assigned to carID ordered by username.
func (s *Store) driversOfLocked(carID uint) []models.Driver {
	out := []models.Driver{}
	for link := range s.carDrivers {
		if link.CarID != carID {
			continue
		}
		if d, ok := s.drivers[link.DriverID]; ok {
			out = append(out, d)
		}
	}
	sortDrivers(out)
	return out
}

// carsOfLocked returns the cars driverID is assigned to, manufacturer attached.
func (s *Store) carsOfLocked(driverID uint) []models.Car {
	out := []models.Car{}
	for link := range s.carDrivers {
		if link.DriverID != driverID {
			continue
		}
		if c, ok := s.cars[link.CarID]; ok {
			c.Manufacturer = s.manufacturers[c.ManufacturerID]
			out = append(out, c)
		}
	}
	sortCars(out)
	return out
}

func sortManufacturers(items []models.Manufacturer) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

func sortDrivers(items []models.Driver) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Username != items[j].Username {
			return items[i].Username < items[j].Username
		}
		return items[i].ID < items[j].ID
	})
}

func sortCars(items []models.Car) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
}
