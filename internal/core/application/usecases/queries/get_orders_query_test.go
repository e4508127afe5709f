package queries_test

import (
	"testing"

	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_DefaultsToNewest(t *testing.T) {
	query, err := queries.NewGetOrdersQuery("", nil, "")
	require.NoError(t, err)
	require.Equal(t, queries.SortNewest, query.Sort())
}

func TestNewGetOrdersQuery_RejectsUnknownSort(t *testing.T) {
	_, err := queries.NewGetOrdersQuery("", nil, queries.Sort("by_vibes"))
	require.ErrorIs(t, err, queries.ErrSortIsInvalid)
}

func TestNewGetOrdersQuery_RejectsUnknownStatus(t *testing.T) {
	status := order.Status(42)
	_, err := queries.NewGetOrdersQuery("", &status, queries.SortNewest)
	require.Error(t, err)
}

func TestGetOrdersQuery_DefaultConstructorFailsValidation(t *testing.T) {
	var query queries.GetOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}
