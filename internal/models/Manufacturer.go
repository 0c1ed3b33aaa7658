// internal/models/manufacturer.go
package models

import "time"

// Manufacturer is a car maker referenced by cars.
type Manufacturer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Country   string    `gorm:"size:255;not null" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Manufacturer) String() string {
	return m.Name + " " + m.Country
}
