package beerorderrepo

import (
	"context"
	"errors"
	"fmt"

	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBeerOrderRepository implements ports.BeerOrderRepository using GORM.
type GormBeerOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id int, aggregate any)
}

// NewGormBeerOrderRepository creates a new GORM order repository.
func NewGormBeerOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormBeerOrderRepository {
	return &GormBeerOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a transient order with all of its lines in one atomic write.
// The database assigns the surrogate id; GORM propagates it into each line
// row before inserting them, and the id is written back into the aggregate so
// every line's composite key is complete on return.
func (r *GormBeerOrderRepository) Add(ctx context.Context, aggregate *beerorder.BeerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return errs.NewPreconditionViolatedError(
			fmt.Sprintf("order %d is already persisted", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row conditionally on its current version and
// replaces the line set as a whole. Zero rows affected means either a stale
// version or a missing row; a separate existence check tells the two apart so
// the caller can distinguish a version conflict from not-found.
func (r *GormBeerOrderRepository) Update(ctx context.Context, aggregate *beerorder.BeerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BeerOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"customer_ref":   dto.CustomerRef,
			"payment_amount": dto.PaymentAmount,
			"status":         dto.Status,
			"version":        dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&BeerOrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", dto.ID)
		}
		return errs.NewVersionConflictError("orderId", dto.ID, dto.Version)
	}

	// Replace the full line set: explicit cascade and orphan removal.
	if err := r.db.WithContext(ctx).
		Where("beer_order_id = ?", dto.ID).
		Delete(&BeerOrderLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by id with its lines eagerly loaded. A partially
// loaded aggregate is never returned.
func (r *GormBeerOrderRepository) Get(ctx context.Context, id int) (*beerorder.BeerOrder, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not a valid order id", id))
	}

	var dto BeerOrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order and cascades to its lines.
func (r *GormBeerOrderRepository) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%d is not a valid order id", id))
	}

	if err := r.db.WithContext(ctx).
		Where("beer_order_id = ?", id).
		Delete(&BeerOrderLineDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BeerOrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}
