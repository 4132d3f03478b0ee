package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/bioscape/crm/internal/models"
	"github.com/bioscape/crm/pkg/repository"
)

func (s *Store) SearchContacts(ctx context.Context, f repository.ContactFilter) ([]models.ContactResult, error) {
	var b strings.Builder
	b.WriteString(`SELECT c.id, c.first_name, c.last_name, c.email, c.email_type,
		c.title, c.seniority, c.outreach_status, c.company_id, co.id, co.name
		FROM contacts c LEFT JOIN companies co ON co.id = c.company_id
		WHERE 1=1`)
	var args []any

	if f.HasEmail {
		b.WriteString(` AND c.email IS NOT NULL`)
	}
	if len(f.CompanyIDs) > 0 {
		b.WriteString(` AND c.company_id IN (` + placeholders(len(f.CompanyIDs)) + `)`)
		for _, id := range f.CompanyIDs {
			args = append(args, id)
		}
	}
	if len(f.IncludeContactIDs) > 0 {
		b.WriteString(` AND c.id IN (` + placeholders(len(f.IncludeContactIDs)) + `)`)
		for _, id := range f.IncludeContactIDs {
			args = append(args, id)
		}
	}
	if len(f.ExcludeContactIDs) > 0 {
		b.WriteString(` AND c.id NOT IN (` + placeholders(len(f.ExcludeContactIDs)) + `)`)
		for _, id := range f.ExcludeContactIDs {
			args = append(args, id)
		}
	}
	if f.Status != "" {
		b.WriteString(` AND c.outreach_status = ?`)
		args = append(args, f.Status)
	}
	switch f.Converted {
	case "only":
		b.WriteString(` AND c.outreach_status = ?`)
		args = append(args, models.OutreachStatusConverted)
	case "exclude":
		b.WriteString(` AND c.outreach_status <> ?`)
		args = append(args, models.OutreachStatusConverted)
	}
	switch f.CatchAll {
	case "only":
		b.WriteString(` AND c.email_type = ?`)
		args = append(args, models.EmailTypeCatchAll)
	case "exclude":
		b.WriteString(` AND (c.email_type IS NULL OR c.email_type <> ?)`)
		args = append(args, models.EmailTypeCatchAll)
	}
	if f.Seniority != "" {
		b.WriteString(` AND c.seniority = ?`)
		args = append(args, f.Seniority)
	}
	if f.Search != "" {
		b.WriteString(` AND (c.first_name LIKE ? OR c.last_name LIKE ? OR c.email LIKE ?)`)
		pat := "%" + f.Search + "%"
		args = append(args, pat, pat, pat)
	}
	if f.TitleSearch != "" {
		b.WriteString(` AND c.title LIKE ?`)
		args = append(args, "%"+f.TitleSearch+"%")
	}

	b.WriteString(` ORDER BY c.last_name COLLATE NOCASE ASC`)
	if f.Limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, f.Limit)
	}

	rows, err := s.conn.QueryRows(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ContactResult
	for rows.Next() {
		var r models.ContactResult
		var coID, coName sql.NullString
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.EmailType,
			&r.Title, &r.Seniority, &r.OutreachStatus, &r.CompanyID, &coID, &coName); err != nil {
			return nil, err
		}
		if coID.Valid {
			r.Company = &models.CompanyRef{ID: coID.String, Name: coName.String}
		}
		out = append(out, r)
	}

	s.logger.Debug("contacts query",
		slog.Int("scope", len(f.CompanyIDs)),
		slog.Int("rows", len(out)),
	)

	return out, rows.Err()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
