package models

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbc, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Init(dbc))
	return dbc
}

func rowCount(t *testing.T, dbc *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, dbc.Model(model).Count(&count).Error)
	return count
}

func TestSeedFillsEmptyTables(t *testing.T) {
	dbc := newTestStore(t)
	Seed(dbc, zap.NewNop())

	assert.Equal(t, int64(1), rowCount(t, dbc, &Settings{}))
	assert.Equal(t, int64(6), rowCount(t, dbc, &City{}))
	assert.Equal(t, int64(4), rowCount(t, dbc, &Place{}))
	assert.Equal(t, int64(3), rowCount(t, dbc, &Hotel{}))
	// Reviews are never seeded
	assert.Equal(t, int64(0), rowCount(t, dbc, &Review{}))

	var settings Settings
	require.NoError(t, dbc.First(&settings, 1).Error)
	assert.Equal(t, "Оленевка.Тур", settings.SiteName)
}

func TestSeedIsIdempotent(t *testing.T) {
	dbc := newTestStore(t)
	Seed(dbc, zap.NewNop())
	Seed(dbc, zap.NewNop())

	assert.Equal(t, int64(1), rowCount(t, dbc, &Settings{}))
	assert.Equal(t, int64(6), rowCount(t, dbc, &City{}))
	assert.Equal(t, int64(4), rowCount(t, dbc, &Place{}))
	assert.Equal(t, int64(3), rowCount(t, dbc, &Hotel{}))
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	dbc := newTestStore(t)
	require.NoError(t, dbc.Create(&City{Name: "Ялта"}).Error)
	Seed(dbc, zap.NewNop())

	// The pre-existing row suppressed the city seed, everything else fills
	assert.Equal(t, int64(1), rowCount(t, dbc, &City{}))
	assert.Equal(t, int64(1), rowCount(t, dbc, &Settings{}))
	assert.Equal(t, int64(4), rowCount(t, dbc, &Place{}))
}

func TestSeededCitiesAreActive(t *testing.T) {
	dbc := newTestStore(t)
	Seed(dbc, zap.NewNop())

	var inactive int64
	require.NoError(t, dbc.Model(&City{}).Where("is_active = ?", false).Count(&inactive).Error)
	assert.Zero(t, inactive)
}
