package sqlite

import (
	"context"
	"database/sql"
	"strings"
)

func (s *Store) EventCompanyIDs(ctx context.Context, eventID string) ([]string, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT company_id FROM event_companies WHERE event_id = ?`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (s *Store) CompanyIDsByCategory(ctx context.Context, category, edgeCategory string) ([]string, error) {
	var b strings.Builder
	b.WriteString(`SELECT id FROM companies WHERE 1=1`)
	var args []any

	if category != "" {
		b.WriteString(` AND category = ?`)
		args = append(args, category)
	}
	if edgeCategory != "" {
		// edge_categories holds a JSON array of tag strings
		b.WriteString(` AND edge_categories LIKE ?`)
		args = append(args, `%"`+edgeCategory+`"%`)
	}

	rows, err := s.conn.QueryRows(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
