package dto

import "github.com/guttosm/sharedesk/internal/domain/models"

// SearchResponse is the body of GET /api/companies/search.
type SearchResponse struct {
	Results []models.CompanySummary `json:"results"`
}

// SearchQuery binds the search query string. Limit is parsed by the handler
// and stays nil when the parameter is omitted or empty, so that an explicit
// limit=0 can be told apart from no limit.
type SearchQuery struct {
	Q     string `form:"q"`
	Limit *int   `form:"-"`
}
