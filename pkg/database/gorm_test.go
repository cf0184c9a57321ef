package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type widget struct {
	Id   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"silent", logger.Silent},
		{"ERROR", logger.Error},
		{"info", logger.Info},
		{"warn", logger.Warn},
		{"", logger.Warn},
		{"verbose", logger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestNewGormDB_UnsupportedDriver(t *testing.T) {
	_, err := NewGormDB(GormConfig{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewGormDB_SQLite(t *testing.T) {
	db, err := NewGormDB(GormConfig{
		Driver:   DriverSQLite,
		DSN:      "file:gorm_test?mode=memory&cache=shared",
		LogLevel: "silent",
	})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db, &widget{}))
	require.NoError(t, db.Create(&widget{Name: "first"}).Error)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.NoError(t, sqlDB.Close())
}
