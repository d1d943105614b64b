package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	uniqueViolation       = "23505"
	branchNumberIndexName = "uq_orders_branch_number"
	numberWidth           = 6
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isNumberTaken(err) {
			return fmt.Errorf("%w: %s", ports.ErrOrderNumberTaken, dto.Number)
		}
		return err
	}
	return nil
}

// Update writes status and delivery staff in one statement. Items and total
// never change after placement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Raw()).
		Updates(map[string]any{
			"status":            aggregate.Status().String(),
			"delivery_staff_id": kernel.RawPtr(aggregate.DeliveryStaffID()),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released as soon as the statement completes.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&dto, "id = ?", id.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order. Items and history go with it through ON DELETE
// CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// NextNumber returns the branch's highest number plus one, zero padded. Two
// concurrent callers may get the same number; the unique index decides and
// the loser sees ports.ErrOrderNumberTaken from Add.
func (r *GormOrderRepository) NextNumber(ctx context.Context, branchID kernel.UUID) (string, error) {
	if err := branchID.Validate(); err != nil {
		return "", err
	}

	var last int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(CAST(number AS integer)), 0) FROM orders WHERE branch_id = ?`, branchID.Raw()).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", numberWidth, last+1), nil
}

func (r *GormOrderRepository) AddStatusChange(ctx context.Context, change order.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	dto := statusChangeFromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func isNumberTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == branchNumberIndexName
}
