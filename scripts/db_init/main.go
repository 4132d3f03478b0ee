package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bioscape/crm/internal/config"
	"github.com/bioscape/crm/internal/db"
	"github.com/bioscape/crm/internal/repository/sqlite"
)

// seedStatements gives a local database enough data to exercise the search
// dashboard: a few companies across categories, contacts with and without
// emails, a sparse outreach history and one event roster.
var seedStatements = []string{
	`INSERT OR IGNORE INTO companies (id, name, category, edge_categories) VALUES
		('demo-co-1', 'Acme Bio', 'biotech', '["wearables","ai"]'),
		('demo-co-2', 'Globex', 'saas', '[]'),
		('demo-co-3', 'Initech Labs', 'biotech', '["ai"]')`,
	`INSERT OR IGNORE INTO contacts (id, first_name, last_name, email, email_type, title, seniority, outreach_status, company_id) VALUES
		('demo-p-1', 'Jan', 'Kowalski', 'jan@acme.example', 'verified', 'VP Growth', 'vp', 'replied', 'demo-co-1'),
		('demo-p-2', 'Ada', 'Brown', 'ada@globex.example', 'catch_all', 'Head of Sales', 'head', 'converted', 'demo-co-2'),
		('demo-p-3', 'Noel', 'Adams', NULL, NULL, 'Engineer', 'ic', '', 'demo-co-3'),
		('demo-p-4', 'Janice', 'Smith', 'janice@indie.example', NULL, 'Growth Lead', 'head', 'sent', NULL)`,
	`INSERT INTO outreach_log (contact_id, date) VALUES
		('demo-p-1', '2025-06-10T09:00:00Z'),
		('demo-p-2', '2025-01-15T09:00:00Z')`,
	`INSERT OR IGNORE INTO event_companies (event_id, company_id) VALUES
		('demo-event-1', 'demo-co-1'),
		('demo-event-1', 'demo-co-2')`,
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	seed := flag.Bool("seed", false, "insert demo data after applying the schema")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := sqlite.EnsureSchema(ctx, database); err != nil {
		fmt.Fprintf(os.Stderr, "Schema error: %v\n", err)
		os.Exit(1)
	}

	if *seed {
		for _, stmt := range seedStatements {
			if _, err := database.Exec(ctx, stmt); err != nil {
				fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	fmt.Println("Database initialized successfully.")
}
