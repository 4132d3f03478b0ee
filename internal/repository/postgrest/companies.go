package postgrest

import (
	"context"
	"net/url"
)

func (s *Store) EventCompanyIDs(ctx context.Context, eventID string) ([]string, error) {
	params := url.Values{}
	params.Set("select", "company_id")
	params.Add("event_id", "eq."+eventID)

	var rows []struct {
		CompanyID string `json:"company_id"`
	}
	if err := s.client.Select(ctx, "event_companies", params, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.CompanyID)
	}
	return out, nil
}

func (s *Store) CompanyIDsByCategory(ctx context.Context, category, edgeCategory string) ([]string, error) {
	params := url.Values{}
	params.Set("select", "id")
	if category != "" {
		params.Add("category", "eq."+category)
	}
	if edgeCategory != "" {
		// set containment over the edge_categories array column
		params.Add("edge_categories", "cs.{"+edgeCategory+"}")
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := s.client.Select(ctx, "companies", params, &rows); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out, nil
}
