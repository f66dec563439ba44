package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "agent-portal.db", cfg.DBPath)
	assert.False(t, cfg.UsePostgres())
	assert.Equal(t, int64(0), cfg.ChainID)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "forecast")
	t.Setenv("FACTORY_ADDRESS", "0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9")
	t.Setenv("CHAIN_ID", "31337")
	t.Setenv("AGENT_ID", "agent-007")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, "0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9", cfg.FactoryAddress)
	assert.Equal(t, int64(31337), cfg.ChainID)
	assert.Equal(t, "agent-007", cfg.AgentID)

	dsn, err := cfg.PostgresDSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "user=portal")
	assert.Contains(t, dsn, "dbname=forecast")
	assert.Contains(t, dsn, "port=5432")
}

func TestPostgresDSNMissingValues(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()
	require.True(t, cfg.UsePostgres())

	_, err := cfg.PostgresDSN()
	assert.Error(t, err)
}
