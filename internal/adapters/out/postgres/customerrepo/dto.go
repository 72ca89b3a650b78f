// Package customerrepo persists customer records. Email carries no unique
// index: the column is optional and uniqueness among non-empty values is a
// service-layer rule.
package customerrepo

import (
	"time"

	"brewery/internal/core/domain/model/customer"
)

// CustomerDTO is the database representation of a customer record.
type CustomerDTO struct {
	ID           int       `gorm:"primaryKey;autoIncrement"`
	Version      int       `gorm:"not null"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"index"`
	Phone        string
	AddressLine1 string    `gorm:"not null"`
	AddressLine2 string
	City         string    `gorm:"not null"`
	State        string    `gorm:"not null"`
	PostalCode   string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer record to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID(),
		Version:      c.Version(),
		Name:         c.Name(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		AddressLine1: c.AddressLine1(),
		AddressLine2: c.AddressLine2(),
		City:         c.City(),
		State:        c.State(),
		PostalCode:   c.PostalCode(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

// toDomain reconstructs a customer record from its row.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(
		dto.ID, dto.Version, dto.Name, dto.Email, dto.Phone,
		dto.AddressLine1, dto.AddressLine2, dto.City, dto.State, dto.PostalCode,
		dto.CreatedAt, dto.UpdatedAt)
}
