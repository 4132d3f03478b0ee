package sqlite

import (
	"context"
	"fmt"

	"github.com/bioscape/crm/internal/db"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		edge_categories TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT,
		email_type TEXT,
		title TEXT NOT NULL DEFAULT '',
		seniority TEXT NOT NULL DEFAULT '',
		outreach_status TEXT NOT NULL DEFAULT '',
		company_id TEXT REFERENCES companies(id)
	)`,
	`CREATE TABLE IF NOT EXISTS outreach_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		contact_id TEXT NOT NULL REFERENCES contacts(id),
		date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS event_companies (
		event_id TEXT NOT NULL,
		company_id TEXT NOT NULL REFERENCES companies(id),
		PRIMARY KEY (event_id, company_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_company ON contacts(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_outreach_log_date ON outreach_log(date)`,
	`CREATE INDEX IF NOT EXISTS idx_outreach_log_contact ON outreach_log(contact_id)`,
}

// EnsureSchema applies the local schema idempotently.
func EnsureSchema(ctx context.Context, conn *db.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
