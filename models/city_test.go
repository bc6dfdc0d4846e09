package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityInactiveFlagPersists(t *testing.T) {
	dbc := newTestStore(t)
	require.NoError(t, dbc.Create(&City{Name: "Ялта", IsActive: false}).Error)

	var city City
	require.NoError(t, dbc.Where("name = ?", "Ялта").First(&city).Error)
	assert.False(t, city.IsActive)
}

func TestCityActiveFlagRoundTrips(t *testing.T) {
	dbc := newTestStore(t)
	require.NoError(t, dbc.Create(&City{Name: "Саки", IsActive: true}).Error)
	require.NoError(t, dbc.Model(&City{}).Where("name = ?", "Саки").Update("is_active", false).Error)

	var city City
	require.NoError(t, dbc.Where("name = ?", "Саки").First(&city).Error)
	assert.False(t, city.IsActive)
}
