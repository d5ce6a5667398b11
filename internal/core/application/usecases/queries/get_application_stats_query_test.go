package queries_test

import (
	"testing"

	"courierops/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetApplicationStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetApplicationStatsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetApplicationStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetApplicationStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetApplicationStatsQueryIsNotConstructed)
}
