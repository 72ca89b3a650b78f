package beerrepo

import (
	"context"
	"errors"
	"fmt"

	"brewery/internal/core/domain/model/beer"
	"brewery/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pgUniqueViolation is the postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormBeerRepository implements ports.BeerRepository using GORM.
type GormBeerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id int, aggregate any)
}

// NewGormBeerRepository creates a new GORM catalog repository.
func NewGormBeerRepository(db *gorm.DB, tracker aggregateTracker) *GormBeerRepository {
	return &GormBeerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a transient catalog record and writes the assigned id back into
// the aggregate. A racing insert on the same UPC surfaces as already-exists
// through the unique index.
func (r *GormBeerRepository) Add(ctx context.Context, aggregate *beer.Beer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return errs.NewPreconditionViolatedError(
			fmt.Sprintf("beer %d is already persisted", aggregate.ID()))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("upc", dto.UPC, err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the record conditionally on its current version. Zero rows
// affected is disambiguated into version-conflict or not-found.
func (r *GormBeerRepository) Update(ctx context.Context, aggregate *beer.Beer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BeerDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":             dto.Name,
			"style":            dto.Style,
			"upc":              dto.UPC,
			"quantity_on_hand": dto.QuantityOnHand,
			"price":            dto.Price,
			"version":          dto.Version + 1,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("upc", dto.UPC, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&BeerDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("beerId", dto.ID)
		}
		return errs.NewVersionConflictError("beerId", dto.ID, dto.Version)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog record by id.
func (r *GormBeerRepository) Get(ctx context.Context, id int) (*beer.Beer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"beerId", fmt.Errorf("%d is not a valid beer id", id))
	}

	var dto BeerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("beerId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUPC retrieves a catalog record by its unique UPC.
func (r *GormBeerRepository) GetByUPC(ctx context.Context, upc string) (*beer.Beer, error) {
	if upc == "" {
		return nil, errs.NewValueIsRequiredError("upc")
	}

	var dto BeerDTO
	if err := r.db.WithContext(ctx).First(&dto, "upc = ?", upc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("upc", upc)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog ordered by id.
func (r *GormBeerRepository) GetAll(ctx context.Context) ([]*beer.Beer, error) {
	var dtos []BeerDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	beers := make([]*beer.Beer, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		beers = append(beers, b)
	}

	return beers, nil
}

// GetAllByIDs resolves a set of ids to the matching subset of the catalog,
// keyed by id. Missing ids are simply absent from the result.
func (r *GormBeerRepository) GetAllByIDs(ctx context.Context, ids []int) (map[int]*beer.Beer, error) {
	if len(ids) == 0 {
		return map[int]*beer.Beer{}, nil
	}

	var dtos []BeerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	beers := make(map[int]*beer.Beer, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		beers[b.ID()] = b
	}

	return beers, nil
}

// Delete removes a catalog record by id.
func (r *GormBeerRepository) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"beerId", fmt.Errorf("%d is not a valid beer id", id))
	}

	result := r.db.WithContext(ctx).Delete(&BeerDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("beerId", id)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && string(pgErr.Code) == pgUniqueViolation
}
