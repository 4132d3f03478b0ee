package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioscape/crm/pkg/repository/mock"
)

func TestResolveOutreachNever(t *testing.T) {
	st := &mock.Store{
		ContactedEverFn: func(limit int) ([]string, error) {
			assert.Equal(t, 50000, limit)
			return []string{"X", "Y", "X"}, nil
		},
	}
	e := newTestEngine(st)

	rec, err := e.resolveOutreach(context.Background(), OutreachNever)
	require.NoError(t, err)
	assert.False(t, rec.empty)
	assert.Nil(t, rec.include)
	assert.Len(t, rec.exclude, 2)
	assert.True(t, rec.exclude.has("X"))
	assert.True(t, rec.exclude.has("Y"))
}

func TestResolveOutreachWindow(t *testing.T) {
	var gotCutoff time.Time
	st := &mock.Store{
		ContactedSinceFn: func(cutoff time.Time, limit int) ([]string, error) {
			gotCutoff = cutoff
			return []string{"A", "A", "B"}, nil
		},
	}
	e := newTestEngine(st)

	rec, err := e.resolveOutreach(context.Background(), Outreach7d)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, -7), gotCutoff)
	assert.False(t, rec.empty)
	assert.Len(t, rec.include, 2)
	assert.True(t, rec.include.has("A"))
	assert.True(t, rec.include.has("B"))
}

func TestResolveOutreachEmptyWindowShortCircuits(t *testing.T) {
	st := &mock.Store{
		ContactedSinceFn: func(cutoff time.Time, limit int) ([]string, error) {
			return nil, nil
		},
	}
	e := newTestEngine(st)

	rec, err := e.resolveOutreach(context.Background(), Outreach30d)
	require.NoError(t, err)
	assert.True(t, rec.empty)

	// the full search must return empty without touching the contacts table
	out, err := e.Search(context.Background(), Criteria{Outreach: Outreach30d, HasEmail: true})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Equal(t, 0, st.SearchCallCount())
}

func TestResolveOutreach90dPlus(t *testing.T) {
	st := &mock.Store{
		ContactedEverFn: func(limit int) ([]string, error) {
			return []string{"A", "B", "C"}, nil
		},
		ContactedSinceFn: func(cutoff time.Time, limit int) ([]string, error) {
			assert.Equal(t, testNow.AddDate(0, 0, -90), cutoff)
			return []string{"B"}, nil
		},
	}
	e := newTestEngine(st)

	rec, err := e.resolveOutreach(context.Background(), Outreach90dPlus)
	require.NoError(t, err)
	assert.False(t, rec.empty)
	assert.Len(t, rec.include, 2)
	assert.True(t, rec.include.has("A"))
	assert.True(t, rec.include.has("C"))
	assert.False(t, rec.include.has("B"))
}

func TestResolveOutreachUnknownBucketDisablesFilter(t *testing.T) {
	st := &mock.Store{}
	e := newTestEngine(st)

	rec, err := e.resolveOutreach(context.Background(), "yesterday-ish")
	require.NoError(t, err)
	assert.False(t, rec.empty)
	assert.Nil(t, rec.include)
	assert.Nil(t, rec.exclude)
	assert.Equal(t, 0, st.ContactedEverCalls)
	assert.Equal(t, 0, st.ContactedSinceCalls)
}

func TestResolveOutreachErrorPropagates(t *testing.T) {
	st := &mock.Store{
		ContactedEverFn: func(limit int) ([]string, error) {
			return nil, errors.New("log table unreachable")
		},
	}
	e := newTestEngine(st)

	_, err := e.Search(context.Background(), Criteria{Outreach: OutreachNever, HasEmail: true})
	require.Error(t, err)
	assert.Equal(t, 0, st.SearchCallCount())
}

func TestResolveNotWithin(t *testing.T) {
	st := &mock.Store{
		ContactedSinceFn: func(cutoff time.Time, limit int) ([]string, error) {
			assert.Equal(t, testNow.AddDate(0, 0, -7), cutoff)
			return []string{"A"}, nil
		},
	}
	e := newTestEngine(st)

	set, err := e.resolveNotWithin(context.Background(), Outreach7d)
	require.NoError(t, err)
	assert.True(t, set.has("A"))

	set, err = e.resolveNotWithin(context.Background(), FilterAll)
	require.NoError(t, err)
	assert.Nil(t, set)

	set, err = e.resolveNotWithin(context.Background(), "fortnight")
	require.NoError(t, err)
	assert.Nil(t, set)
}
