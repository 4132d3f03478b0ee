package sqlite

import (
	"log/slog"

	"github.com/bioscape/crm/internal/db"
	"github.com/bioscape/crm/pkg/repository"
)

// Store implements the search store interfaces over a local sqlite database.
// Production runs against the Supabase PostgREST gateway; this backend serves
// local development and tests.
type Store struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure Store implements the public interfaces.
var _ repository.ContactStore = (*Store)(nil)
var _ repository.OutreachLogStore = (*Store)(nil)
var _ repository.CompanyStore = (*Store)(nil)

func New(conn *db.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{conn: conn, logger: logger}
}
