package search

import (
	"io"
	"log/slog"
	"time"

	"github.com/bioscape/crm/internal/config"
	"github.com/bioscape/crm/pkg/repository/mock"
)

// fixed clock for every engine test
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(st *mock.Store) *Engine {
	e := NewEngine(st, st, st, config.SearchConfig{
		ChunkSize:      40,
		ChunkRowLimit:  1000,
		SingleRowLimit: 500,
		LogScanLimit:   50000,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.now = func() time.Time { return testNow }
	return e
}
