// Package postgres implements the storage interfaces with gorm on PostgreSQL.
package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"taxi_service/internal/storage"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Manufacturer() storage.IManufacturerStorage { return &manufacturerRepo{db: s.db} }
func (s *Store) Car() storage.ICarStorage                   { return &carRepo{db: s.db} }
func (s *Store) Driver() storage.IDriverStorage             { return &driverRepo{db: s.db} }

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
