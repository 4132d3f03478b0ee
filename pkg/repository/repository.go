package repository

import (
	"context"
	"time"

	"github.com/bioscape/crm/internal/models"
)

// Store interfaces for the contact search engine. These are the public
// contracts consumers should depend on; concrete implementations live under
// internal/ (PostgREST for Supabase, sqlite for local mode).

// ContactFilter carries every pushdown filter for one contact query. All
// fields are optional and combine with AND semantics. CompanyIDs must already
// be sized to fit one request; the engine chunks larger scopes before calling
// SearchContacts.
type ContactFilter struct {
	CompanyIDs        []string // nil means no company restriction
	IncludeContactIDs []string
	ExcludeContactIDs []string
	HasEmail          bool
	Status            string // "" means any status
	Converted         string // "", "only" or "exclude"
	CatchAll          string // "", "only" or "exclude"
	Seniority         string
	Search            string // ORs across first name, last name, email
	TitleSearch       string
	Limit             int
}

type ContactStore interface {
	SearchContacts(ctx context.Context, f ContactFilter) ([]models.ContactResult, error)
}

type OutreachLogStore interface {
	// ContactedSince returns the contact IDs of log entries dated at or after
	// cutoff. IDs may repeat; callers deduplicate.
	ContactedSince(ctx context.Context, cutoff time.Time, limit int) ([]string, error)
	// ContactedEver returns the contact IDs of all log entries.
	ContactedEver(ctx context.Context, limit int) ([]string, error)
}

type CompanyStore interface {
	// EventCompanyIDs returns the IDs of companies that attended an event.
	EventCompanyIDs(ctx context.Context, eventID string) ([]string, error)
	// CompanyIDsByCategory returns the IDs of companies matching a category
	// equality filter and/or an edge-category containment filter. Empty
	// arguments mean "no filter for that dimension".
	CompanyIDsByCategory(ctx context.Context, category, edgeCategory string) ([]string, error)
}

// Store bundles everything the search engine and server need.
type Store interface {
	ContactStore
	OutreachLogStore
	CompanyStore
}
