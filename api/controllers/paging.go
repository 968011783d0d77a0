package controllers

import (
	"net/http"

	"github.com/stocksight/stocksight-backend/api/validators"
	"github.com/stocksight/stocksight-backend/pkg/config"
	"github.com/stocksight/stocksight-backend/pkg/pagination"
)

const maxPageNumber = 1 << 30

// parsePageParams reads page/limit query parameters against the configured
// page size bounds.
func parsePageParams(r *http.Request, cfg config.AuditConfig) (pagination.Params, error) {
	page, err := validators.ParseQueryInt(r, "page", 1, 1, maxPageNumber)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", cfg.DefaultPageSize, 1, cfg.MaxPageSize)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}
