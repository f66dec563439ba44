package services

import (
	"fmt"

	"github.com/forecastlabs/agent-portal/internal/constants"
	"github.com/forecastlabs/agent-portal/internal/database"
	"github.com/forecastlabs/agent-portal/internal/models"
)

// FactoryService resolves the configured factory contract against the
// externally-owned deployed_contracts table.
type FactoryService interface {
	// GetFactoryDetails returns the factory row, or (nil, nil) when the
	// deployment pipeline has not logged it yet.
	GetFactoryDetails() (*models.ContractDetails, error)
}

type factoryService struct {
	db             *database.Database
	factoryAddress string
	chainID        int64
}

// NewFactoryService creates a new FactoryService bound to the configured
// factory address and chain.
func NewFactoryService(db *database.Database, factoryAddress string, chainID int64) FactoryService {
	return &factoryService{
		db:             db,
		factoryAddress: factoryAddress,
		chainID:        chainID,
	}
}

func (s *factoryService) GetFactoryDetails() (*models.ContractDetails, error) {
	if s.factoryAddress == "" {
		return nil, fmt.Errorf("%w: FACTORY_ADDRESS", ErrConfigurationMissing)
	}
	if s.chainID == 0 {
		return nil, fmt.Errorf("%w: CHAIN_ID", ErrConfigurationMissing)
	}

	var details models.ContractDetails
	found, err := s.db.FetchOne(&details,
		"SELECT * FROM deployed_contracts WHERE address = ? AND chain_id = ? AND contract_name = ?",
		s.factoryAddress, s.chainID, constants.FactoryContractName,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if !found {
		return nil, nil
	}

	return &details, nil
}
