package postgrest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/bioscape/crm/internal/models"
	"github.com/bioscape/crm/pkg/repository"
)

const contactProjection = "id,first_name,last_name,email,email_type,title,seniority,outreach_status,company_id,companies(id,name)"

// contactRow mirrors the PostgREST response shape; the embedded company comes
// back under the table name "companies".
type contactRow struct {
	ID             string             `json:"id"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Email          *string            `json:"email"`
	EmailType      *string            `json:"email_type"`
	Title          string             `json:"title"`
	Seniority      string             `json:"seniority"`
	OutreachStatus string             `json:"outreach_status"`
	CompanyID      *string            `json:"company_id"`
	Companies      *models.CompanyRef `json:"companies"`
}

func (s *Store) SearchContacts(ctx context.Context, f repository.ContactFilter) ([]models.ContactResult, error) {
	params := url.Values{}
	params.Set("select", contactProjection)

	if f.HasEmail {
		params.Add("email", "not.is.null")
	}
	if f.CompanyIDs != nil {
		params.Add("company_id", "in.("+quoteList(f.CompanyIDs)+")")
	}
	if len(f.IncludeContactIDs) > 0 {
		params.Add("id", "in.("+quoteList(f.IncludeContactIDs)+")")
	}
	if len(f.ExcludeContactIDs) > 0 {
		params.Add("id", "not.in.("+quoteList(f.ExcludeContactIDs)+")")
	}
	if f.Status != "" {
		params.Add("outreach_status", "eq."+f.Status)
	}
	switch f.Converted {
	case "only":
		params.Add("outreach_status", "eq."+models.OutreachStatusConverted)
	case "exclude":
		params.Add("outreach_status", "neq."+models.OutreachStatusConverted)
	}
	switch f.CatchAll {
	case "only":
		params.Add("email_type", "eq."+models.EmailTypeCatchAll)
	case "exclude":
		params.Add("email_type", "neq."+models.EmailTypeCatchAll)
	}
	if f.Seniority != "" {
		params.Add("seniority", "eq."+f.Seniority)
	}
	if f.Search != "" {
		q := likePattern(f.Search)
		params.Add("or", fmt.Sprintf("(first_name.ilike.%s,last_name.ilike.%s,email.ilike.%s)", q, q, q))
	}
	if f.TitleSearch != "" {
		params.Add("title", "ilike."+likePattern(f.TitleSearch))
	}

	params.Set("order", "last_name.asc")
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}

	var rows []contactRow
	if err := s.client.Select(ctx, "contacts", params, &rows); err != nil {
		return nil, err
	}
	s.logger.Debug("contacts query",
		slog.Int("scope", len(f.CompanyIDs)),
		slog.Int("rows", len(rows)),
	)

	out := make([]models.ContactResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ContactResult{
			ID:             r.ID,
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			Email:          r.Email,
			EmailType:      r.EmailType,
			Title:          r.Title,
			Seniority:      r.Seniority,
			OutreachStatus: r.OutreachStatus,
			CompanyID:      r.CompanyID,
			Company:        r.Companies,
		})
	}
	return out, nil
}

// quoteList renders IDs for a PostgREST in-list filter. Quoting keeps IDs
// containing reserved characters intact.
func quoteList(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + id + `"`
	}
	return strings.Join(quoted, ",")
}

// likePattern wraps a term for an ilike substring match, neutralizing
// PostgREST's reserved characters in user input.
func likePattern(term string) string {
	term = strings.NewReplacer(",", " ", "(", " ", ")", " ").Replace(term)
	return "*" + term + "*"
}
