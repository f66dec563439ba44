package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forecastlabs/agent-portal/internal/constants"
	"github.com/forecastlabs/agent-portal/internal/database"
	"github.com/forecastlabs/agent-portal/internal/models"
)

const (
	testFactoryAddress = "0xCf7Ed3AccA5a467e9e704C703E8D87F634fB0Fc9"
	testChainID        = int64(31337)
	testAgentID        = "agent-007"
	testGameAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testDeployer       = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

// setupTestDatabase opens an in-memory store and stands in for the external
// deployment pipeline by provisioning the deployed_contracts table.
func setupTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.NewSqliteDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.DB.AutoMigrate(&models.ContractDetails{}))
	return db
}

func seedFactory(t *testing.T, db *database.Database, address string, chainID int64) uint {
	t.Helper()

	factory := models.ContractDetails{
		ContractName:    constants.FactoryContractName,
		Address:         address,
		ABI:             "[]",
		Bytecode:        "0x",
		DeployedAt:      time.Now(),
		Status:          "deployed",
		ChainID:         chainID,
		CompilerVersion: "0.8.20",
	}
	require.NoError(t, db.DB.Create(&factory).Error)
	return factory.ID
}

func countGames(t *testing.T, db *database.Database) int64 {
	t.Helper()

	var count int64
	_, err := db.FetchOne(&count, "SELECT COUNT(*) FROM agent_deployed_games")
	require.NoError(t, err)
	return count
}

func txHash(suffix byte) string {
	hash := []byte("0x0000000000000000000000000000000000000000000000000000000000000000")
	hash[len(hash)-1] = suffix
	return string(hash)
}
