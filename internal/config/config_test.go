package config_test

import (
	"testing"
	"time"

	"chapati/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$notarealhashbutfineforconfig")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StoreDriverFile, cfg.StoreDriver)
	assert.Equal(t, "orders.json", cfg.OrdersFile)
	assert.Equal(t, 20, cfg.UnitPrice)
	assert.Equal(t, 4*time.Hour, cfg.Retention)
	assert.Equal(t, []string{"0718 357 737-Alimoo"}, cfg.Contacts)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UNIT_PRICE", "35")
	t.Setenv("ORDER_TTL", "2h30m")
	t.Setenv("CONTACTS", "0700 000 001-Shop, 0700 000 002-Delivery")
	t.Setenv("STORE_DRIVER", "postgres")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 35, cfg.UnitPrice)
	assert.Equal(t, 2*time.Hour+30*time.Minute, cfg.Retention)
	assert.Equal(t, []string{"0700 000 001-Shop", "0700 000 002-Delivery"}, cfg.Contacts)
	assert.Equal(t, config.StoreDriverPostgres, cfg.StoreDriver)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequiredEnv(t)

	t.Run("unit price not a number", func(t *testing.T) {
		t.Setenv("UNIT_PRICE", "twenty")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("unit price zero", func(t *testing.T) {
		t.Setenv("UNIT_PRICE", "0")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("ORDER_TTL", "four hours")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "redis")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
