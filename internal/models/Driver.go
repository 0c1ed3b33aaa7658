// internal/models/driver.go
package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Driver is both a login account and a taxi driver with a license.
type Driver struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	FirstName     string    `gorm:"size:150" json:"first_name"`
	LastName      string    `gorm:"size:150" json:"last_name"`
	LicenseNumber string    `gorm:"size:255" json:"license_number"`
	Cars          []Car     `gorm:"-" json:"cars,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d Driver) String() string {
	return fmt.Sprintf("%s (%s %s)", d.Username, d.FirstName, d.LastName)
}

// AbsoluteURL is the detail page of the driver.
func (d Driver) AbsoluteURL() string {
	return fmt.Sprintf("/drivers/%d/", d.ID)
}

// SetPassword stores a bcrypt hash of raw.
func (d *Driver) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	d.Password = string(hash)
	return nil
}

// CheckPassword compares raw against the stored hash.
func (d Driver) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(d.Password), []byte(raw)) == nil
}
