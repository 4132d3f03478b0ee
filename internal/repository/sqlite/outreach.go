package sqlite

import (
	"context"
	"time"
)

func (s *Store) ContactedSince(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT contact_id FROM outreach_log WHERE date >= ? LIMIT ?`,
		cutoff.UTC().Format(time.RFC3339), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (s *Store) ContactedEver(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.conn.QueryRows(ctx, `SELECT contact_id FROM outreach_log LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}
