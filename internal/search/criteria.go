package search

import (
	"net/url"
	"strconv"
	"strings"
)

// Recognized outreach recency buckets.
const (
	OutreachNever    = "never"
	Outreach7d       = "7d"
	Outreach30d      = "30d"
	Outreach90d      = "90d"
	Outreach90dPlus  = "90d_plus"
	FilterAll        = "all"
	ConvertedOnly    = "only"
	ConvertedExclude = "exclude"
)

// Criteria is the flat set of filter parameters for one search invocation.
// Every dimension is optional; "all" and the empty string both mean "no
// filter for this dimension". Dimensions compose with AND semantics.
type Criteria struct {
	Search             string
	CompanyIDs         []string
	CompanyIDsProvided bool // distinguishes an absent list from an empty one
	CompanyID          string
	Category           string
	EdgeCategory       string
	Status             string
	Seniority          string
	TitleSearch        string
	HasEmail           bool
	EventID            string
	Outreach           string // never|7d|30d|90d|90d_plus|all
	NotWithin          string // 7d|30d|90d|all
	Converted          string // only|exclude
	CatchAll           string // only|exclude
}

// CriteriaFromQuery builds Criteria from URL query parameters. has_email
// defaults to true when absent.
func CriteriaFromQuery(q url.Values) Criteria {
	c := Criteria{
		Search:       q.Get("search"),
		CompanyID:    q.Get("company_id"),
		Category:     q.Get("category"),
		EdgeCategory: q.Get("edge_category"),
		Status:       q.Get("status"),
		Seniority:    q.Get("seniority"),
		TitleSearch:  q.Get("title_search"),
		HasEmail:     true,
		EventID:      q.Get("event_id"),
		Outreach:     q.Get("outreach"),
		NotWithin:    q.Get("not_within"),
		Converted:    q.Get("converted"),
		CatchAll:     q.Get("catch_all"),
	}

	if q.Has("has_email") {
		if v, err := strconv.ParseBool(q.Get("has_email")); err == nil {
			c.HasEmail = v
		}
	}
	if q.Has("company_ids") {
		c.CompanyIDsProvided = true
		for _, id := range strings.Split(q.Get("company_ids"), ",") {
			if id = strings.TrimSpace(id); id != "" {
				c.CompanyIDs = append(c.CompanyIDs, id)
			}
		}
	}

	return c
}

// active reports whether a single-valued dimension carries a real filter.
func active(v string) bool {
	return v != "" && v != FilterAll
}
