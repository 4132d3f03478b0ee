package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bioscape/crm/internal/models"
	"github.com/bioscape/crm/pkg/repository"
)

// queryContacts applies the pushdown filters against the store. Scopes small
// enough for one in-list filter go out as a single bounded query; larger
// scopes are partitioned into chunks queried in parallel, each with its own
// row cap. A chunk failure degrades to an empty contribution so sibling
// chunks still count.
func (e *Engine) queryContacts(ctx context.Context, scope []string, f repository.ContactFilter) ([]models.ContactResult, error) {
	if scope == nil || len(scope) <= e.cfg.ChunkSize {
		f.CompanyIDs = scope
		f.Limit = e.cfg.SingleRowLimit
		return e.contacts.SearchContacts(ctx, f)
	}

	chunks := chunkIDs(scope, e.cfg.ChunkSize)
	results := make([][]models.ContactResult, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()
			cf := f
			cf.CompanyIDs = chunk
			cf.Limit = e.cfg.ChunkRowLimit
			rows, err := e.contacts.SearchContacts(ctx, cf)
			if err != nil {
				e.logStoreError("chunk query failed", err)
				return
			}
			results[i] = rows
		}(i, chunk)
	}
	wg.Wait()

	var out []models.ContactResult
	for _, rows := range results {
		out = append(out, rows...)
	}
	e.logger.Debug("chunked contact query complete",
		slog.Int("chunks", len(chunks)),
		slog.Int("rows", len(out)),
	)
	return out, nil
}

// chunkIDs partitions ids into consecutive groups of at most size.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
