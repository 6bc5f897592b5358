package database

import (
	"testing"

	"go-sales-rest/internal/config"
	"go-sales-rest/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		driver  string
		name    string
		wantErr bool
	}{
		{driver: "", name: "postgres"},
		{driver: "postgres", name: "postgres"},
		{driver: "mysql", name: "mysql"},
		{driver: "sqlite", name: "sqlite"},
		{driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := dialectorFor(config.DatabaseConfig{Driver: tt.driver, Name: "sales"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("silent"))
	assert.Equal(t, logger.Info, logLevel("info"))
	assert.Equal(t, logger.Warn, logLevel(""))
}

func TestNewTestDBMigratesSchema(t *testing.T) {
	db := NewTestDB(t)

	product := model.Product{Name: "Monitor", Price: decimal.NewFromInt(200), Stock: 10}
	require.NoError(t, db.Create(&product).Error)

	var loaded model.Product
	require.NoError(t, db.First(&loaded, product.ID).Error)
	assert.Equal(t, 10, loaded.Stock)
	assert.True(t, loaded.Price.Equal(decimal.NewFromInt(200)))

	for _, table := range []interface{}{&model.Client{}, &model.Employee{}, &model.Sale{}, &model.User{}, &model.Operator{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}
