package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bioscape/crm/internal/config"
	"github.com/bioscape/crm/internal/models"
	"github.com/bioscape/crm/pkg/repository"
)

// Engine composes the filter dimensions of one contact search: it resolves
// outreach-recency ID sets and the effective company scope, fans the contact
// query out in transport-safe chunks, and merges the partial results into one
// ordered, deduplicated list. Each invocation is stateless.
type Engine struct {
	contacts  repository.ContactStore
	log       repository.OutreachLogStore
	companies repository.CompanyStore
	cfg       config.SearchConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewEngine(contacts repository.ContactStore, log repository.OutreachLogStore, companies repository.CompanyStore, cfg config.SearchConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 40
	}
	if cfg.ChunkRowLimit <= 0 {
		cfg.ChunkRowLimit = 1000
	}
	if cfg.SingleRowLimit <= 0 {
		cfg.SingleRowLimit = 500
	}
	if cfg.LogScanLimit <= 0 {
		cfg.LogScanLimit = 50000
	}
	return &Engine{
		contacts:  contacts,
		log:       log,
		companies: companies,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Search runs the full pipeline for one set of criteria. It returns an empty
// (never nil) slice when any required scoping stage resolves to a
// definitively empty set.
func (e *Engine) Search(ctx context.Context, c Criteria) ([]models.ContactResult, error) {
	rec, err := e.resolveOutreach(ctx, c.Outreach)
	if err != nil {
		return nil, fmt.Errorf("resolve outreach window: %w", err)
	}
	if rec.empty {
		return []models.ContactResult{}, nil
	}

	notWithin, err := e.resolveNotWithin(ctx, c.NotWithin)
	if err != nil {
		return nil, fmt.Errorf("resolve not-within window: %w", err)
	}

	scope, ok := e.resolveCompanyScope(ctx, c)
	if !ok {
		return []models.ContactResult{}, nil
	}

	rows, err := e.queryContacts(ctx, scope, e.buildFilter(c, rec))
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	return e.merge(rows, notWithin), nil
}

// buildFilter assembles the pushdown filters shared by every chunk query.
func (e *Engine) buildFilter(c Criteria, rec recencySets) repository.ContactFilter {
	f := repository.ContactFilter{
		HasEmail:    c.HasEmail,
		Converted:   c.Converted,
		CatchAll:    c.CatchAll,
		Search:      c.Search,
		TitleSearch: c.TitleSearch,
	}
	if active(c.Status) {
		f.Status = c.Status
	}
	if active(c.Seniority) {
		f.Seniority = c.Seniority
	}
	if rec.include != nil {
		f.IncludeContactIDs = rec.include.slice()
	}
	if rec.exclude != nil {
		f.ExcludeContactIDs = rec.exclude.slice()
	}
	return f
}
