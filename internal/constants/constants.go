package constants

const (
	// FactoryContractName is the contract_name value the deployment pipeline
	// writes for the forecast game factory in deployed_contracts.
	FactoryContractName = "ForecastGameFactory"

	// GameCreatedEventName is the factory event emitted for every created
	// game instance.
	GameCreatedEventName = "GameCreated"

	// DefaultPageSize caps the catalog page when the caller does not supply
	// a limit.
	DefaultPageSize = 10
)
