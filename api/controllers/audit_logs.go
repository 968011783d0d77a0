package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/stocksight/stocksight-backend/api/responses"
	"github.com/stocksight/stocksight-backend/api/validators"
	"github.com/stocksight/stocksight-backend/internal/audit"
	"github.com/stocksight/stocksight-backend/pkg/config"
	"github.com/stocksight/stocksight-backend/pkg/enums"
	pkgerrors "github.com/stocksight/stocksight-backend/pkg/errors"
	"github.com/stocksight/stocksight-backend/pkg/logger"
)

// AuditLogList returns a filtered page of the audit trail.
func AuditLogList(svc audit.Service, cfg config.AuditConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		params, err := parsePageParams(r, cfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters, err := parseAuditFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), audit.ListInput{
			Filters:    filters,
			Pagination: params,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WritePaged(w, result.Logs, result.Pagination)
	}
}

func parseAuditFilters(r *http.Request) (audit.ListFilters, error) {
	var filters audit.ListFilters

	userID, err := validators.ParseQueryUUID(r, "user_id")
	if err != nil {
		return filters, err
	}
	filters.UserID = userID

	entityID, err := validators.ParseQueryUUID(r, "entity_id")
	if err != nil {
		return filters, err
	}
	filters.EntityID = entityID

	if raw := strings.TrimSpace(r.URL.Query().Get("action")); raw != "" {
		action, err := enums.ParseAuditAction(raw)
		if err != nil {
			return filters, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid action filter")
		}
		filters.Action = &action
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("entity_type")); raw != "" {
		entityType, err := enums.ParseEntityType(raw)
		if err != nil {
			return filters, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid entity type filter")
		}
		filters.EntityType = &entityType
	}

	from, err := parseQueryTime(r, "start_date", false)
	if err != nil {
		return filters, err
	}
	filters.From = from

	to, err := parseQueryTime(r, "end_date", true)
	if err != nil {
		return filters, err
	}
	filters.To = to

	return filters, nil
}

// parseQueryTime accepts RFC3339 timestamps or bare dates. A bare date used
// as a range end covers the whole day, so it is pushed to the last instant
// before the next midnight.
func parseQueryTime(r *http.Request, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		return &value, nil
	}
	value, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a date or RFC3339 timestamp").WithDetails(map[string]any{"field": key})
	}
	if endOfDay {
		value = value.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &value, nil
}
