package models

// Domain models matching the CRM tables in the data store. The search
// service only reads these; the import/enrichment pipeline owns the writes.

// OutreachStatusConverted is the terminal outreach status.
const OutreachStatusConverted = "converted"

// EmailTypeCatchAll marks addresses that accept mail for any local part at
// the domain (lower delivery-confidence signal).
const EmailTypeCatchAll = "catch_all"

type Contact struct {
	ID             string  `json:"id" db:"id"`
	FirstName      string  `json:"first_name" db:"first_name"`
	LastName       string  `json:"last_name" db:"last_name"`
	Email          *string `json:"email,omitempty" db:"email"`
	EmailType      *string `json:"email_type,omitempty" db:"email_type"`
	Title          string  `json:"title" db:"title"`
	Seniority      string  `json:"seniority" db:"seniority"`
	OutreachStatus string  `json:"outreach_status" db:"outreach_status"`
	CompanyID      *string `json:"company_id,omitempty" db:"company_id"`
}

type Company struct {
	ID             string   `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Category       string   `json:"category" db:"category"`
	EdgeCategories []string `json:"edge_categories" db:"edge_categories"`
}

// OutreachLogEntry is an append-only record of a single outreach touch.
type OutreachLogEntry struct {
	ID        int64  `json:"id" db:"id"`
	ContactID string `json:"contact_id" db:"contact_id"`
	Date      string `json:"date" db:"date"`
}

// EventCompanyMembership records that a company participated in an event.
type EventCompanyMembership struct {
	EventID   string `json:"event_id" db:"event_id"`
	CompanyID string `json:"company_id" db:"company_id"`
}

// CompanyRef is the embedded company projection returned with each search hit.
type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ContactResult is the fixed projection of a contact returned by the search
// endpoint. Company is nil when the contact has no company_id.
type ContactResult struct {
	ID             string      `json:"id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          *string     `json:"email"`
	EmailType      *string     `json:"email_type"`
	Title          string      `json:"title"`
	Seniority      string      `json:"seniority"`
	OutreachStatus string      `json:"outreach_status"`
	CompanyID      *string     `json:"company_id"`
	Company        *CompanyRef `json:"company"`
}
