// Package beerorderrepo persists the beer order aggregate. The order row owns
// its line rows: they are written together, loaded together, and deleted
// together. Lines carry a composite primary key (beer_order_id, beer_id) and a
// denormalized beer name snapshot, so an order survives later catalog changes.
package beerorderrepo

import (
	"time"

	"brewery/internal/core/domain/model/beerorder"

	"github.com/shopspring/decimal"
)

// BeerOrderDTO is the database representation of an order aggregate root.
type BeerOrderDTO struct {
	ID            int                `gorm:"primaryKey;autoIncrement"`
	Version       int                `gorm:"not null"`
	CustomerRef   string             `gorm:"not null"`
	PaymentAmount *decimal.Decimal   `gorm:"type:numeric(19,2)"`
	Status        string             `gorm:"not null;index"`
	Lines         []BeerOrderLineDTO `gorm:"foreignKey:BeerOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time          `gorm:"autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "beer_orders".
func (BeerOrderDTO) TableName() string {
	return "beer_orders"
}

// BeerOrderLineDTO is the database representation of one order line. The
// composite primary key makes a second line for the same beer within one
// order unrepresentable. BeerID deliberately carries no foreign key: deleting
// a catalog record must not touch existing orders.
type BeerOrderLineDTO struct {
	BeerOrderID int    `gorm:"primaryKey;autoIncrement:false"`
	BeerID      int    `gorm:"primaryKey;autoIncrement:false"`
	Version     int    `gorm:"not null"`
	BeerName    string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Status      string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "beer_order_lines".
func (BeerOrderLineDTO) TableName() string {
	return "beer_order_lines"
}

// fromDomain converts an order aggregate to its database representation. A
// transient aggregate maps to a zero ID, which the store replaces on insert.
func fromDomain(order *beerorder.BeerOrder) BeerOrderDTO {
	lines := order.Lines()
	lineDTOs := make([]BeerOrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, BeerOrderLineDTO{
			BeerOrderID: order.ID(),
			BeerID:      line.BeerID(),
			Version:     line.Version(),
			BeerName:    line.BeerName(),
			Quantity:    line.Quantity(),
			Status:      line.Status().String(),
		})
	}

	return BeerOrderDTO{
		ID:            order.ID(),
		Version:       order.Version(),
		CustomerRef:   order.CustomerRef(),
		PaymentAmount: order.PaymentAmount(),
		Status:        order.Status().String(),
		Lines:         lineDTOs,
		CreatedAt:     order.CreatedAt(),
		UpdatedAt:     order.UpdatedAt(),
	}
}

// toDomain reconstructs the aggregate, lines included, from its rows.
func toDomain(dto BeerOrderDTO) (*beerorder.BeerOrder, error) {
	status, err := beerorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*beerorder.BeerOrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineStatus, lineErr := beerorder.LineStatusFromString(lineDTO.Status)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := beerorder.RestoreBeerOrderLine(
			lineDTO.BeerOrderID, lineDTO.BeerID, lineDTO.Version,
			lineDTO.BeerName, lineDTO.Quantity, lineStatus)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return beerorder.RestoreBeerOrder(
		dto.ID, dto.Version, dto.CustomerRef, dto.PaymentAmount, status, lines,
		dto.CreatedAt, dto.UpdatedAt)
}
