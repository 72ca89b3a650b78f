// Package beerrepo persists catalog records. The UPC column carries a unique
// index as a second line of defense behind the service-layer uniqueness check.
package beerrepo

import (
	"time"

	"brewery/internal/core/domain/model/beer"

	"github.com/shopspring/decimal"
)

// BeerDTO is the database representation of a catalog record.
type BeerDTO struct {
	ID             int             `gorm:"primaryKey;autoIncrement"`
	Version        int             `gorm:"not null"`
	Name           string          `gorm:"not null"`
	Style          string          `gorm:"not null"`
	UPC            string          `gorm:"column:upc;not null;uniqueIndex"`
	QuantityOnHand int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "beers".
func (BeerDTO) TableName() string {
	return "beers"
}

// fromDomain converts a catalog record to its database representation.
func fromDomain(b *beer.Beer) BeerDTO {
	return BeerDTO{
		ID:             b.ID(),
		Version:        b.Version(),
		Name:           b.Name(),
		Style:          b.Style(),
		UPC:            b.UPC(),
		QuantityOnHand: b.QuantityOnHand(),
		Price:          b.Price(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}

// toDomain reconstructs a catalog record from its row.
func toDomain(dto BeerDTO) (*beer.Beer, error) {
	return beer.RestoreBeer(
		dto.ID, dto.Version, dto.Name, dto.Style, dto.UPC,
		dto.QuantityOnHand, dto.Price, dto.CreatedAt, dto.UpdatedAt)
}
