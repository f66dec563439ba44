package services

import (
	"fmt"
	"log"
	"sort"

	"github.com/forecastlabs/agent-portal/internal/constants"
	"github.com/forecastlabs/agent-portal/internal/database"
	"github.com/forecastlabs/agent-portal/internal/models"
)

// AllCategoriesSentinel disables category filtering when passed to ListGames.
const AllCategoriesSentinel = "All"

// GamePage is one window of the deployed-game listing. TotalCount reflects
// the filtered set regardless of the pagination window.
type GamePage struct {
	Games      []models.AgentDeployedGame `json:"games"`
	TotalCount int64                      `json:"total_count"`
}

// CatalogService serves the read side of the portal. Both operations degrade
// to empty results on storage failure instead of propagating errors, so a
// broken database never blocks the page from rendering.
type CatalogService interface {
	ListCategories() []string
	ListGames(category string, page, limit int) GamePage
}

type catalogService struct {
	db *database.Database
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *database.Database) CatalogService {
	return &catalogService{db: db}
}

// ListCategories unions the decoded category sets of every row and returns
// them sorted lexicographically.
func (s *catalogService) ListCategories() []string {
	var rows []string
	err := s.db.FetchAll(&rows, "SELECT categories FROM agent_deployed_games WHERE categories <> ''")
	if err != nil {
		log.Printf("failed to list categories: %v", err)
		return []string{}
	}

	seen := make(map[string]struct{})
	for _, raw := range rows {
		for _, label := range models.DecodeCategories(raw) {
			seen[label] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for label := range seen {
		categories = append(categories, label)
	}
	sort.Strings(categories)
	return categories
}

// ListGames returns one page of deployed games, newest first, plus the total
// count under the same filter. Page numbering starts at 1; a page past the
// end comes back empty with the count intact.
func (s *catalogService) ListGames(category string, page, limit int) GamePage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constants.DefaultPageSize
	}

	where := ""
	var args []any
	if category != "" && category != AllCategoriesSentinel {
		predicate, predicateArgs := models.CategoryPredicate(category)
		where = " WHERE " + predicate
		args = predicateArgs
	}

	var total int64
	if _, err := s.db.FetchOne(&total, "SELECT COUNT(*) FROM agent_deployed_games"+where, args...); err != nil {
		log.Printf("failed to count deployed games: %v", err)
		return GamePage{Games: []models.AgentDeployedGame{}}
	}

	query := fmt.Sprintf(
		"SELECT * FROM agent_deployed_games%s ORDER BY deployed_at DESC, id DESC LIMIT ? OFFSET ?",
		where,
	)
	queryArgs := append(append([]any{}, args...), limit, (page-1)*limit)

	var games []models.AgentDeployedGame
	if err := s.db.FetchAll(&games, query, queryArgs...); err != nil {
		log.Printf("failed to list deployed games: %v", err)
		return GamePage{Games: []models.AgentDeployedGame{}}
	}
	if games == nil {
		games = []models.AgentDeployedGame{}
	}

	return GamePage{Games: games, TotalCount: total}
}
