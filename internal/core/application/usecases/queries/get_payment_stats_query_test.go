package queries_test

import (
	"testing"
	"time"

	"courierops/internal/core/application/usecases/queries"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPaymentStatsQuery_Valid(t *testing.T) {
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewGetPaymentStatsQuery(cutoff)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, cutoff, query.OverdueBefore())
}

func TestNewGetPaymentStatsQuery_ZeroCutoff_ReturnsError(t *testing.T) {
	_, err := queries.NewGetPaymentStatsQuery(time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetPaymentStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPaymentStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPaymentStatsQueryIsNotConstructed)
}
