package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/forecastlabs/agent-portal/internal/constants"
	"github.com/forecastlabs/agent-portal/internal/models"
	"github.com/forecastlabs/agent-portal/internal/services"
	"github.com/forecastlabs/agent-portal/internal/utils"
)

// RecordGameRequest is the body of POST /api/games. The caller must have
// confirmed the transaction on-chain and extracted the GameCreated event
// before submitting it.
type RecordGameRequest struct {
	GameIDOnChain     int64    `json:"game_id_on_chain" validate:"gte=0"`
	GameAddress       string   `json:"game_address" validate:"required"`
	TransactionHash   string   `json:"transaction_hash" validate:"required"`
	DeployedByAddress string   `json:"deployed_by_address" validate:"required"`
	Categories        []string `json:"categories" validate:"required,min=1,dive,required"`
}

// RecordGameResponse mirrors the original portal's record result shape.
type RecordGameResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// handleFactoryDetails serves the configured factory contract row.
func (s *APIServer) handleFactoryDetails(c *fiber.Ctx) error {
	details, err := s.factory.GetFactoryDetails()
	if err != nil {
		if errors.Is(err, services.ErrConfigurationMissing) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Factory address or chain ID is not configured",
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if details == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Factory deployment not found. Ensure the factory is deployed and logged.",
		})
	}

	return c.JSON(details)
}

// handleRecordGame records one confirmed game deployment.
func (s *APIServer) handleRecordGame(c *fiber.Ctx) error {
	var req RecordGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(RecordGameResponse{
			Error: "Invalid request body",
		})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(RecordGameResponse{
			Error: err.Error(),
		})
	}

	if !utils.IsValidEthereumAddress(req.GameAddress) {
		return c.Status(fiber.StatusBadRequest).JSON(RecordGameResponse{
			Error: "Invalid game address",
		})
	}
	if !utils.IsValidEthereumAddress(req.DeployedByAddress) {
		return c.Status(fiber.StatusBadRequest).JSON(RecordGameResponse{
			Error: "Invalid deployer address",
		})
	}
	if !utils.IsValidTransactionHash(req.TransactionHash) {
		return c.Status(fiber.StatusBadRequest).JSON(RecordGameResponse{
			Error: "Invalid transaction hash",
		})
	}

	categories, err := normalizeCategories(req.Categories)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(RecordGameResponse{
			Error: err.Error(),
		})
	}

	if s.cfg.FactoryAddress == "" || s.cfg.ChainID == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(RecordGameResponse{
			Error: "Factory address or chain ID is not configured",
		})
	}
	if s.cfg.AgentID == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(RecordGameResponse{
			Error: "Agent ID is not configured",
		})
	}

	event := models.GameCreatedEvent{
		GameID:          req.GameIDOnChain,
		GameAddress:     req.GameAddress,
		TransactionHash: req.TransactionHash,
	}
	meta := models.DeploymentMetadata{
		FactoryAddress:    s.cfg.FactoryAddress,
		ChainID:           s.cfg.ChainID,
		AgentID:           s.cfg.AgentID,
		DeployedByAddress: req.DeployedByAddress,
		Categories:        categories,
	}

	switch err := s.recorder.RecordDeployment(event, meta); {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(RecordGameResponse{Success: true})
	case errors.Is(err, services.ErrFactoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(RecordGameResponse{
			Error: "Factory deployment not found in deployed_contracts. Ensure the factory is deployed and logged correctly.",
		})
	case errors.Is(err, services.ErrDuplicateDeployment):
		return c.Status(fiber.StatusConflict).JSON(RecordGameResponse{
			Error: "Duplicate transaction hash. This game might already be recorded.",
		})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(RecordGameResponse{
			Error: err.Error(),
		})
	}
}

// handleListGames serves one page of the game catalog.
func (s *APIServer) handleListGames(c *fiber.Ctx) error {
	category := c.Query("category")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", constants.DefaultPageSize)

	return c.JSON(s.catalog.ListGames(category, page, limit))
}

// handleListCategories serves the distinct category vocabulary.
func (s *APIServer) handleListCategories(c *fiber.Ctx) error {
	return c.JSON(s.catalog.ListCategories())
}

// normalizeCategories trims labels and drops empty ones. Labels stay
// free-form, but commas would corrupt the stored encoding.
func normalizeCategories(labels []string) ([]string, error) {
	var normalized []string
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if strings.Contains(label, ",") {
			return nil, errors.New("category labels must not contain commas")
		}
		normalized = append(normalized, label)
	}
	if len(normalized) == 0 {
		return nil, errors.New("at least one category is required")
	}
	return normalized, nil
}
