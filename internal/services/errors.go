package services

import "errors"

// Failure taxonomy for the recorder and factory lookups. Storage errors are
// translated into these at the service boundary; nothing below gorm leaks
// past it unclassified.
var (
	// ErrConfigurationMissing marks an operation that needs an environment
	// value (factory address, chain id, agent id) that was never set.
	ErrConfigurationMissing = errors.New("required configuration is not set")

	// ErrFactoryNotFound means the (factory address, chain id) pair resolved
	// to no deployed_contracts row at insert time.
	ErrFactoryNotFound = errors.New("factory deployment not found in deployed_contracts")

	// ErrDuplicateDeployment means the transaction hash is already recorded.
	// Retried recordings of the same confirmed transaction land here and are
	// safe to treat as benign.
	ErrDuplicateDeployment = errors.New("transaction hash already recorded")

	// ErrStorageUnavailable wraps connectivity or query execution failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
