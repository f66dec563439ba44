package models

import (
	"time"
)

// ContractDetails mirrors one row of the deployed_contracts table. The table
// is owned by the external factory deployment pipeline; this service only
// reads from it and never migrates or alters it.
type ContractDetails struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ContractName    string    `gorm:"column:contract_name" json:"contract_name"`
	Address         string    `gorm:"column:address" json:"address"`
	ABI             string    `gorm:"column:abi" json:"abi"`
	Bytecode        string    `gorm:"column:bytecode" json:"bytecode"`
	DeployedAt      time.Time `gorm:"column:deployed_at" json:"deployed_at"`
	Status          string    `gorm:"column:status" json:"status"`
	ChainID         int64     `gorm:"column:chain_id" json:"chain_id"`
	CompilerVersion string    `gorm:"column:compiler_version" json:"compiler_version"`
}

func (ContractDetails) TableName() string {
	return "deployed_contracts"
}

// AgentDeployedGame represents one forecast game instance created through the
// factory contract. Rows are insert-only; the transaction hash is the
// idempotency key guarding against double-recording of the same deployment.
type AgentDeployedGame struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	FactoryDeploymentID uint       `gorm:"not null;index" json:"factory_deployment_id"`
	GameIDOnChain       int64      `gorm:"not null" json:"game_id_on_chain"`
	GameAddress         string     `gorm:"type:varchar(255);not null" json:"game_address"`
	AgentID             string     `gorm:"type:varchar(255);not null" json:"agent_id"`
	DeployedByAddress   string     `gorm:"type:varchar(255);not null" json:"deployed_by_address"`
	TransactionHash     string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"transaction_hash"`
	DeployedAt          time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"deployed_at"`
	Categories          Categories `gorm:"type:text;default:''" json:"categories"`
}

func (AgentDeployedGame) TableName() string {
	return "agent_deployed_games"
}

// GameCreatedEvent carries the fields extracted from a confirmed GameCreated
// log entry in a factory transaction receipt.
type GameCreatedEvent struct {
	GameID          int64  `json:"game_id"`
	GameAddress     string `json:"game_address"`
	TransactionHash string `json:"transaction_hash"`
}

// DeploymentMetadata is the off-chain context attached to a recorded game
// deployment.
type DeploymentMetadata struct {
	FactoryAddress    string   `json:"factory_address"`
	ChainID           int64    `json:"chain_id"`
	AgentID           string   `json:"agent_id"`
	DeployedByAddress string   `json:"deployed_by_address"`
	Categories        []string `json:"categories"`
}
