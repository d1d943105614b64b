package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BranchSummary counts a branch's orders per status. CompletedSales sums the
// totals of COMPLETED orders only.
type BranchSummary struct {
	BranchID       kernel.UUID
	Counts         map[order.Status]int
	Active         int
	Total          int
	CompletedSales kernel.Money
	From           time.Time
	To             time.Time
	GeneratedAt    time.Time
}

func newBranchSummary(branchID kernel.UUID, from, to time.Time) *BranchSummary {
	counts := make(map[order.Status]int)
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}
	return &BranchSummary{
		BranchID:       branchID,
		Counts:         counts,
		CompletedSales: kernel.Zero(),
		From:           from,
		To:             to,
		GeneratedAt:    time.Now().UTC(),
	}
}

func (s *BranchSummary) add(status order.Status, count int, sum decimal.Decimal) error {
	s.Counts[status] += count
	s.Total += count
	if status.IsActive() {
		s.Active += count
	}
	if status == order.Completed {
		sales, err := kernel.NewMoney(sum)
		if err != nil {
			return err
		}
		s.CompletedSales = s.CompletedSales.Add(sales)
	}
	return nil
}

type summaryRow struct {
	BranchID uuid.UUID
	Status   string
	Count    int
	Sum      decimal.Decimal
}

// summarize aggregates orders created in [from, to) per branch. A nil
// branchID covers every branch that has orders in the window.
func summarize(ctx context.Context, db *gorm.DB, branchID *kernel.UUID, from, to time.Time) ([]*BranchSummary, error) {
	tx := db.WithContext(ctx).
		Table("orders").
		Select("branch_id, status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS sum")
	if branchID != nil {
		tx = tx.Where("branch_id = ?", branchID.Raw())
	}
	if !from.IsZero() {
		tx = tx.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		tx = tx.Where("created_at < ?", to)
	}

	var rows []summaryRow
	if err := tx.Group("branch_id, status").Order("branch_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]*BranchSummary, 0)
	byBranch := make(map[uuid.UUID]*BranchSummary)
	for _, row := range rows {
		summary, ok := byBranch[row.BranchID]
		if !ok {
			id, err := kernel.UUIDFrom(row.BranchID)
			if err != nil {
				return nil, err
			}
			summary = newBranchSummary(id, from, to)
			byBranch[row.BranchID] = summary
			summaries = append(summaries, summary)
		}

		status, err := order.ParseStatus(row.Status)
		if err != nil {
			return nil, err
		}
		if err = summary.add(status, row.Count, row.Sum); err != nil {
			return nil, err
		}
	}
	return summaries, nil
}
