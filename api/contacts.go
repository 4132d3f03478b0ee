package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/qri-io/jsonschema"

	"github.com/bioscape/crm/internal/models"
	"github.com/bioscape/crm/internal/search"
)

// ContactSearcher is the slice of the search engine the handler needs.
type ContactSearcher interface {
	Search(ctx context.Context, c search.Criteria) ([]models.ContactResult, error)
}

type ContactsHandler struct {
	engine ContactSearcher
}

func NewContactsHandler(engine ContactSearcher) *ContactsHandler {
	return &ContactsHandler{engine: engine}
}

// searchRequestSchema checks the shape of POST bodies, not the enum values:
// unrecognized filter values stay permissive and are handled downstream.
var searchRequestSchema = mustSchema(`{
	"type": "object",
	"properties": {
		"search": {"type": "string"},
		"company_ids": {"type": "array", "items": {"type": "string"}},
		"company_id": {"type": "string"},
		"category": {"type": "string"},
		"edge_category": {"type": "string"},
		"status": {"type": "string"},
		"seniority": {"type": "string"},
		"title_search": {"type": "string"},
		"has_email": {"type": "boolean"},
		"event_id": {"type": "string"},
		"outreach": {"type": "string"},
		"not_within": {"type": "string"},
		"converted": {"type": "string"},
		"catch_all": {"type": "string"}
	}
}`)

func mustSchema(s string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(s), rs); err != nil {
		panic(err)
	}
	return rs
}

// searchRequest is the POST body: the same logical fields as the query-string
// entry point, for callers whose explicit company-ID list is too large to
// URL-encode. Pointer fields distinguish absent from empty.
type searchRequest struct {
	Search       string    `json:"search"`
	CompanyIDs   *[]string `json:"company_ids"`
	CompanyID    string    `json:"company_id"`
	Category     string    `json:"category"`
	EdgeCategory string    `json:"edge_category"`
	Status       string    `json:"status"`
	Seniority    string    `json:"seniority"`
	TitleSearch  string    `json:"title_search"`
	HasEmail     *bool     `json:"has_email"`
	EventID      string    `json:"event_id"`
	Outreach     string    `json:"outreach"`
	NotWithin    string    `json:"not_within"`
	Converted    string    `json:"converted"`
	CatchAll     string    `json:"catch_all"`
}

func (req searchRequest) criteria() search.Criteria {
	c := search.Criteria{
		Search:       req.Search,
		CompanyID:    req.CompanyID,
		Category:     req.Category,
		EdgeCategory: req.EdgeCategory,
		Status:       req.Status,
		Seniority:    req.Seniority,
		TitleSearch:  req.TitleSearch,
		HasEmail:     true,
		EventID:      req.EventID,
		Outreach:     req.Outreach,
		NotWithin:    req.NotWithin,
		Converted:    req.Converted,
		CatchAll:     req.CatchAll,
	}
	if req.HasEmail != nil {
		c.HasEmail = *req.HasEmail
	}
	if req.CompanyIDs != nil {
		c.CompanyIDsProvided = true
		c.CompanyIDs = *req.CompanyIDs
	}
	return c
}

type searchResponse struct {
	Contacts []models.ContactResult `json:"contacts"`
}

func (h *ContactsHandler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	var criteria search.Criteria

	switch r.Method {
	case http.MethodGet:
		criteria = search.CriteriaFromQuery(r.URL.Query())

	case http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		verrs, err := searchRequestSchema.ValidateBytes(r.Context(), body)
		if err != nil {
			writeError(w, "invalid search request", http.StatusBadRequest)
			return
		}
		if len(verrs) > 0 {
			writeError(w, "invalid search request: "+verrs[0].Error(), http.StatusBadRequest)
			return
		}
		var req searchRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		criteria = req.criteria()

	default:
		http.NotFound(w, r)
		return
	}

	contacts, err := h.engine.Search(r.Context(), criteria)
	if err != nil {
		logger.Error("contact search failed", slog.Any("err", err))
		writeError(w, "failed to search contacts", http.StatusInternalServerError)
		return
	}
	if contacts == nil {
		contacts = []models.ContactResult{}
	}

	writeJSON(w, searchResponse{Contacts: contacts}, http.StatusOK)
}
