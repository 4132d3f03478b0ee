package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bioscape/crm/internal/models"
)

// merge applies the post-hoc not-within exclusion, deduplicates by contact ID
// and produces the final total ordering. Per-chunk queries each come back
// sorted, but only locally; the global sort makes chunk arrival order
// irrelevant. Deduplication is defensive: chunks are disjoint by construction
// (a contact belongs to exactly one company), but an upstream overlap must
// never surface as a duplicate row.
func (e *Engine) merge(rows []models.ContactResult, exclude idSet) []models.ContactResult {
	out := make([]models.ContactResult, 0, len(rows))
	seen := make(idSet, len(rows))
	for _, r := range rows {
		if exclude.has(r.ID) {
			continue
		}
		if seen.has(r.ID) {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}

	// collators carry internal buffers, so build one per invocation
	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i].LastName, out[j].LastName) < 0
	})

	return out
}
