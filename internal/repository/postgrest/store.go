package postgrest

import (
	"log/slog"

	"github.com/bioscape/crm/pkg/repository"
	"github.com/bioscape/crm/pkg/supabase"
)

// Store implements the search store interfaces against the Supabase PostgREST
// gateway. Filters are expressed as PostgREST query parameters, which means
// large in-list filters inflate the request URL; the search engine keeps
// company-ID lists chunked below the gateway's URL limit before calling in.
type Store struct {
	client *supabase.Client
	logger *slog.Logger
}

// Ensure Store implements the public interfaces.
var _ repository.ContactStore = (*Store)(nil)
var _ repository.OutreachLogStore = (*Store)(nil)
var _ repository.CompanyStore = (*Store)(nil)

func New(client *supabase.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, logger: logger}
}
