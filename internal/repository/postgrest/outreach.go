package postgrest

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type logRow struct {
	ContactID string `json:"contact_id"`
}

func (s *Store) ContactedSince(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("select", "contact_id")
	params.Add("date", "gte."+cutoff.UTC().Format(time.RFC3339))
	params.Set("limit", strconv.Itoa(limit))

	return s.selectContactIDs(ctx, params)
}

func (s *Store) ContactedEver(ctx context.Context, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("select", "contact_id")
	params.Set("limit", strconv.Itoa(limit))

	return s.selectContactIDs(ctx, params)
}

func (s *Store) selectContactIDs(ctx context.Context, params url.Values) ([]string, error) {
	var rows []logRow
	if err := s.client.Select(ctx, "outreach_log", params, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ContactID)
	}
	return out, nil
}
