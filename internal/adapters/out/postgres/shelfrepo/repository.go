package shelfrepo

import (
	"context"
	"errors"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/shelf"
	"laundrytrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShelfRepository implements ShelfRepository using GORM.
type GormShelfRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShelfRepository creates a new GORM shelf repository.
func NewGormShelfRepository(db *gorm.DB, tracker aggregateTracker) *GormShelfRepository {
	return &GormShelfRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly provisioned shelf to the database.
// Duplicate codes are reported as ObjectAlreadyExistsError; the database's
// primary key constraint is the source of truth for uniqueness, so two
// concurrent creates cannot both succeed.
func (r *GormShelfRepository) Add(ctx context.Context, aggregate *shelf.Shelf) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("code", aggregate.Code(), err)
		}
		return err
	}

	r.trackShelf(aggregate)
	return nil
}

// Update saves an existing shelf to the database.
// Uses Select("*") so clearing the occupant writes the NULL too.
func (r *GormShelfRepository) Update(ctx context.Context, aggregate *shelf.Shelf) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShelfDTO{}).
		Where("code = ?", dto.Code).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("code", aggregate.Code())
	}

	r.trackShelf(aggregate)
	return nil
}

// GetByCode retrieves a shelf by its code.
func (r *GormShelfRepository) GetByCode(ctx context.Context, code string) (*shelf.Shelf, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto ShelfDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every provisioned shelf ordered by code.
func (r *GormShelfRepository) GetAll(ctx context.Context) ([]*shelf.Shelf, error) {
	var dtos []ShelfDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shelves := make([]*shelf.Shelf, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shelves = append(shelves, s)
	}

	return shelves, nil
}

// trackShelf registers the shelf with the unit of work's tracker. Shelves have
// no surrogate UUID, so tracking uses only the aggregate reference.
func (r *GormShelfRepository) trackShelf(aggregate *shelf.Shelf) {
	r.tracker.TrackAggregate(kernel.UUID{}, aggregate)
}
