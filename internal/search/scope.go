package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bioscape/crm/pkg/supabase"
)

// resolveCompanyScope reduces the four company-scoping inputs into one
// effective allow-list. A nil scope with ok=true means no company
// restriction; ok=false means a required stage resolved to a definitively
// empty set and the search short-circuits to no results.
//
// Stages apply in a fixed order, each intersecting the prior scope when both
// are present: explicit ID list, single company ID, event membership,
// category/edge-category. A lookup failure yields zero matches for that stage
// rather than aborting the search: a broken filter should return no results,
// never unfiltered ones.
func (e *Engine) resolveCompanyScope(ctx context.Context, c Criteria) (scope []string, ok bool) {
	if c.CompanyIDsProvided {
		cleaned := make([]string, 0, len(c.CompanyIDs))
		for _, id := range c.CompanyIDs {
			if id != "" {
				cleaned = append(cleaned, id)
			}
		}
		if len(cleaned) == 0 {
			return nil, false
		}
		scope = cleaned
	}

	if active(c.CompanyID) {
		if scope == nil {
			scope = []string{c.CompanyID}
		} else {
			scope = newIDSet(scope).intersect([]string{c.CompanyID})
			if len(scope) == 0 {
				return nil, false
			}
		}
	}

	if active(c.EventID) {
		ids, err := e.companies.EventCompanyIDs(ctx, c.EventID)
		if err != nil {
			e.logStoreError("event company lookup failed", err)
			ids = nil
		}
		scope, ok = narrow(scope, ids)
		if !ok {
			return nil, false
		}
	}

	if active(c.Category) || active(c.EdgeCategory) {
		category, edge := "", ""
		if active(c.Category) {
			category = c.Category
		}
		if active(c.EdgeCategory) {
			edge = c.EdgeCategory
		}
		ids, err := e.companies.CompanyIDsByCategory(ctx, category, edge)
		if err != nil {
			e.logStoreError("category company lookup failed", err)
			ids = nil
		}
		scope, ok = narrow(scope, ids)
		if !ok {
			return nil, false
		}
	}

	return scope, true
}

// narrow intersects the current scope with a stage's matches, adopting the
// matches outright when no scope exists yet. Empty matches are terminal.
func narrow(scope, ids []string) ([]string, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	if scope == nil {
		return ids, true
	}
	scope = newIDSet(ids).intersect(scope)
	if len(scope) == 0 {
		return nil, false
	}
	return scope, true
}

// logStoreError surfaces the gateway's structured diagnostics when present.
func (e *Engine) logStoreError(msg string, err error) {
	var se *supabase.StoreError
	if errors.As(err, &se) {
		e.logger.Error(msg,
			slog.String("message", se.Message),
			slog.String("details", se.Details),
			slog.String("hint", se.Hint),
			slog.String("code", se.Code),
		)
		return
	}
	e.logger.Error(msg, slog.Any("err", err))
}
