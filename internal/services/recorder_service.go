package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forecastlabs/agent-portal/internal/database"
	"github.com/forecastlabs/agent-portal/internal/models"
	"gorm.io/gorm"
)

// RecorderService persists confirmed game deployments. It performs no
// on-chain interaction: callers must have confirmed the transaction and
// extracted the GameCreated event before calling RecordDeployment.
type RecorderService interface {
	RecordDeployment(event models.GameCreatedEvent, meta models.DeploymentMetadata) error
}

type recorderService struct {
	db *database.Database
}

// NewRecorderService creates a new RecorderService.
func NewRecorderService(db *database.Database) RecorderService {
	return &recorderService{db: db}
}

// insertGameSQL resolves the parent factory row inside the same statement as
// the insert, so the parent's existence check and the write cannot race.
const insertGameSQL = `
INSERT INTO agent_deployed_games (
	factory_deployment_id,
	game_id_on_chain,
	game_address,
	agent_id,
	deployed_by_address,
	transaction_hash,
	deployed_at,
	categories
) VALUES (
	(SELECT id FROM deployed_contracts WHERE address = ? AND chain_id = ?),
	?, ?, ?, ?, ?, CURRENT_TIMESTAMP, ?
)`

// RecordDeployment inserts exactly one row for the given event. Outcomes:
// nil on success, ErrFactoryNotFound when the (factory address, chain id)
// lookup resolves nothing, ErrDuplicateDeployment when the transaction hash
// is already recorded, and ErrStorageUnavailable for anything else.
func (s *recorderService) RecordDeployment(event models.GameCreatedEvent, meta models.DeploymentMetadata) error {
	affected, err := s.db.Execute(insertGameSQL,
		meta.FactoryAddress,
		meta.ChainID,
		event.GameID,
		event.GameAddress,
		meta.AgentID,
		meta.DeployedByAddress,
		event.TransactionHash,
		models.EncodeCategories(meta.Categories),
	)
	if err != nil {
		return classifyInsertError(err)
	}

	if affected != 1 {
		return ErrFactoryNotFound
	}

	return nil
}

func classifyInsertError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateDeployment
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrFactoryNotFound
	}

	// Driver-level fallbacks. A missing parent makes the correlated subquery
	// yield NULL, which trips the NOT NULL constraint on
	// factory_deployment_id.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key"):
		return ErrDuplicateDeployment
	case strings.Contains(msg, "NOT NULL constraint failed: agent_deployed_games.factory_deployment_id"),
		strings.Contains(msg, `null value in column "factory_deployment_id"`),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrFactoryNotFound
	}

	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
