// internal/models/car.go
package models

import (
	"fmt"
	"time"
)

// Car belongs to one manufacturer and is driven by any number of drivers.
// The driver set lives in the car_drivers join table and is loaded explicitly.
type Car struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Model          string       `gorm:"size:255;not null" json:"model"`
	ManufacturerID uint         `gorm:"not null;index" json:"manufacturer_id"`
	Manufacturer   Manufacturer `gorm:"foreignKey:ManufacturerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"manufacturer"`
	Drivers        []Driver     `gorm:"-" json:"drivers,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (c Car) String() string {
	return c.Model
}

// AbsoluteURL is the detail page of the car.
func (c Car) AbsoluteURL() string {
	return fmt.Sprintf("/cars/%d/", c.ID)
}

// HasDriver reports whether driverID is in the loaded driver set.
func (c Car) HasDriver(driverID uint) bool {
	for _, d := range c.Drivers {
		if d.ID == driverID {
			return true
		}
	}
	return false
}

// CarDriver is one row of the car/driver assignment relation.
type CarDriver struct {
	CarID    uint `gorm:"primaryKey;autoIncrement:false" json:"car_id"`
	DriverID uint `gorm:"primaryKey;autoIncrement:false" json:"driver_id"`
}

func (CarDriver) TableName() string {
	return "car_drivers"
}
