package queries_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_RequiresIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	q, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("zero limit uses default", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(kernel.NewUUID(), nil, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultListLimit, q.Limit())
	})

	t.Run("limit above max", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(kernel.NewUUID(), nil, nil, queries.MaxListLimit+1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := order.Status(42)
		_, err := queries.NewListOrdersQuery(kernel.NewUUID(), nil, &bad, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewGetBranchSummaryQuery_RejectsInvertedWindow(t *testing.T) {
	now := time.Now()

	_, err := queries.NewGetBranchSummaryQuery(kernel.NewUUID(), kernel.NewUUID(), now, now.Add(-time.Minute))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetBranchSummaryQuery(kernel.NewUUID(), kernel.NewUUID(), now, time.Time{})
	require.NoError(t, err)
}

func TestNewListBranchSummariesQuery_RequiresWindow(t *testing.T) {
	_, err := queries.NewListBranchSummariesQuery(time.Time{}, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	now := time.Now()
	_, err = queries.NewListBranchSummariesQuery(now, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListActorsQuery(t *testing.T) {
	t.Run("zero limit uses default", func(t *testing.T) {
		q, err := queries.NewListActorsQuery(kernel.NewUUID(), nil, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultListLimit, q.Limit())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		role := actor.UnknownRole
		_, err := queries.NewListActorsQuery(kernel.NewUUID(), &role, nil, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects limit above max", func(t *testing.T) {
		_, err := queries.NewListActorsQuery(kernel.NewUUID(), nil, nil, queries.MaxListLimit+1)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewGetActorQuery_RequiresIDs(t *testing.T) {
	_, err := queries.NewGetActorQuery(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
