package mock

import (
	"context"
	"sync"
	"time"

	"github.com/bioscape/crm/internal/models"
	"github.com/bioscape/crm/pkg/repository"
)

// Store is a programmable test double for the search engine's store
// interfaces. Each method delegates to its Fn hook when set and records the
// call; the zero value answers every query with no rows.
type Store struct {
	mu sync.Mutex

	SearchContactsFn func(f repository.ContactFilter) ([]models.ContactResult, error)
	SearchCalls      []repository.ContactFilter

	ContactedSinceFn    func(cutoff time.Time, limit int) ([]string, error)
	ContactedSinceCalls int

	ContactedEverFn    func(limit int) ([]string, error)
	ContactedEverCalls int

	EventCompanyIDsFn    func(eventID string) ([]string, error)
	EventCompanyIDsCalls int

	CompanyIDsByCategoryFn    func(category, edgeCategory string) ([]string, error)
	CompanyIDsByCategoryCalls int
}

var _ repository.Store = (*Store)(nil)

func (s *Store) SearchContacts(ctx context.Context, f repository.ContactFilter) ([]models.ContactResult, error) {
	s.mu.Lock()
	s.SearchCalls = append(s.SearchCalls, f)
	fn := s.SearchContactsFn
	s.mu.Unlock()

	if fn != nil {
		return fn(f)
	}
	return nil, nil
}

// SearchCallCount is safe to read while chunk queries may still be in flight.
func (s *Store) SearchCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.SearchCalls)
}

func (s *Store) ContactedSince(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	s.ContactedSinceCalls++
	fn := s.ContactedSinceFn
	s.mu.Unlock()

	if fn != nil {
		return fn(cutoff, limit)
	}
	return nil, nil
}

func (s *Store) ContactedEver(ctx context.Context, limit int) ([]string, error) {
	s.mu.Lock()
	s.ContactedEverCalls++
	fn := s.ContactedEverFn
	s.mu.Unlock()

	if fn != nil {
		return fn(limit)
	}
	return nil, nil
}

func (s *Store) EventCompanyIDs(ctx context.Context, eventID string) ([]string, error) {
	s.mu.Lock()
	s.EventCompanyIDsCalls++
	fn := s.EventCompanyIDsFn
	s.mu.Unlock()

	if fn != nil {
		return fn(eventID)
	}
	return nil, nil
}

func (s *Store) CompanyIDsByCategory(ctx context.Context, category, edgeCategory string) ([]string, error) {
	s.mu.Lock()
	s.CompanyIDsByCategoryCalls++
	fn := s.CompanyIDsByCategoryFn
	s.mu.Unlock()

	if fn != nil {
		return fn(category, edgeCategory)
	}
	return nil, nil
}
