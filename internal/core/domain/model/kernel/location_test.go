package kernel_test

import (
	"testing"

	"courierops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("creates valid location", func(t *testing.T) {
		loc, err := kernel.NewLocation(-17.8292, 31.0522)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InEpsilon(t, -17.8292, loc.Latitude(), 1e-9)
		assert.InEpsilon(t, 31.0522, loc.Longitude(), 1e-9)
	})

	t.Run("accepts boundary coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.LocationMinLatitude, kernel.LocationMinLongitude},
			{kernel.LocationMaxLatitude, kernel.LocationMaxLongitude},
			{0, 0},
		} {
			loc, err := kernel.NewLocation(coords[0], coords[1])
			require.NoError(t, err)
			require.NoError(t, loc.Validate())
		}
	})

	t.Run("fails on latitude out of range", func(t *testing.T) {
		_, err := kernel.NewLocation(91, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("fails on longitude out of range", func(t *testing.T) {
		_, err := kernel.NewLocation(0, -180.5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("joins both coordinate errors", func(t *testing.T) {
		_, err := kernel.NewLocation(-100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestOriginLocation(t *testing.T) {
	loc := kernel.OriginLocation()

	require.NoError(t, loc.Validate())
	assert.Zero(t, loc.Latitude())
	assert.Zero(t, loc.Longitude())
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location must be created")
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(1.5, 2.5)
	b, _ := kernel.NewLocation(1.5, 2.5)
	c, _ := kernel.NewLocation(1.5, 3)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
