package actorrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ports.ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormActorRepository) Update(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// A map so that a cleared branch is written as NULL.
	result := r.db.WithContext(ctx).
		Model(&ActorDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":      dto.Name,
			"role":      dto.Role,
			"branch_id": dto.BranchID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("actor", aggregate.ID().String())
	}
	return nil
}

func (r *GormActorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ActorDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("actor", id.String())
	}
	return nil
}

// GetDeliveryStaff lists the branch's DELIVERY actors ordered by name.
func (r *GormActorRepository) GetDeliveryStaff(ctx context.Context, branchID kernel.UUID) ([]*actor.Actor, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ActorDTO
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND role = ?", branchID.Raw(), actor.Delivery.String()).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	staff := make([]*actor.Actor, 0, len(dtos))
	for _, dto := range dtos {
		a, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		staff = append(staff, a)
	}
	return staff, nil
}
