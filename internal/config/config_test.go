package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, "3000", c.HTTP.Port)
	assert.Equal(t, 10, c.Sales.RecentLimit)
	assert.True(t, c.Seed.Enabled)
	assert.True(t, c.Metrics.Enabled)

	rate, err := c.TaxRate()
	require.NoError(t, err)
	assert.Equal(t, "0.05", rate.String())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PHARMACY_HTTP_PORT", "8080")
	t.Setenv("PHARMACY_SALES_TAX_RATE", "0.075")
	t.Setenv("PHARMACY_SEED_ENABLED", "false")
	t.Setenv("PHARMACY_APP_TIMEZONE", "UTC")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", c.HTTP.Port)
	assert.False(t, c.Seed.Enabled)

	rate, err := c.TaxRate()
	require.NoError(t, err)
	assert.Equal(t, "0.075", rate.String())

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pharmacy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sales:\n  recent_limit: 25\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, c.Sales.RecentLimit)
	assert.Equal(t, "3000", c.HTTP.Port)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("tax rate", func(t *testing.T) {
		t.Setenv("PHARMACY_SALES_TAX_RATE", "five percent")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("negative tax rate", func(t *testing.T) {
		t.Setenv("PHARMACY_SALES_TAX_RATE", "-0.1")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("timezone", func(t *testing.T) {
		t.Setenv("PHARMACY_APP_TIMEZONE", "Mars/Olympus")
		_, err := Load("")
		assert.Error(t, err)
	})
}
