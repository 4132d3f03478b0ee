package search

import (
	"context"
	"log/slog"
)

var windowDays = map[string]int{
	Outreach7d:  7,
	Outreach30d: 30,
	Outreach90d: 90,
}

// recencySets is the outcome of resolving an outreach-recency bucket.
// include, when non-nil, restricts the result to its members; exclude, when
// non-nil, removes its members. empty signals that the inclusion set resolved
// to nothing and the whole search short-circuits.
type recencySets struct {
	include idSet
	exclude idSet
	empty   bool
}

// resolveOutreach converts an outreach bucket selector into concrete contact
// ID sets by scanning the outreach log. The store cannot push "contacted
// within the last N days" down alongside the other dimensions, so the sets
// are materialized here and handed to the contact query.
func (e *Engine) resolveOutreach(ctx context.Context, bucket string) (recencySets, error) {
	switch bucket {
	case "", FilterAll:
		return recencySets{}, nil

	case OutreachNever:
		ids, err := e.log.ContactedEver(ctx, e.cfg.LogScanLimit)
		if err != nil {
			return recencySets{}, err
		}
		return recencySets{exclude: newIDSet(ids)}, nil

	case Outreach7d, Outreach30d, Outreach90d:
		cutoff := e.now().AddDate(0, 0, -windowDays[bucket])
		ids, err := e.log.ContactedSince(ctx, cutoff, e.cfg.LogScanLimit)
		if err != nil {
			return recencySets{}, err
		}
		include := newIDSet(ids)
		return recencySets{include: include, empty: len(include) == 0}, nil

	case Outreach90dPlus:
		// contacted at some point, but not within the last 90 days
		ever, err := e.log.ContactedEver(ctx, e.cfg.LogScanLimit)
		if err != nil {
			return recencySets{}, err
		}
		cutoff := e.now().AddDate(0, 0, -windowDays[Outreach90d])
		recent, err := e.log.ContactedSince(ctx, cutoff, e.cfg.LogScanLimit)
		if err != nil {
			return recencySets{}, err
		}
		include := newIDSet(ever).subtract(newIDSet(recent))
		return recencySets{include: include, empty: len(include) == 0}, nil

	default:
		e.logger.Warn("unrecognized outreach bucket, ignoring filter", slog.String("bucket", bucket))
		return recencySets{}, nil
	}
}

// resolveNotWithin builds the exclusion set for the "not contacted within
// window" filter. The set is applied after the contact query returns: pushing
// a large not-in list into the store request costs more than dropping rows
// from an already small candidate list.
func (e *Engine) resolveNotWithin(ctx context.Context, window string) (idSet, error) {
	switch window {
	case "", FilterAll:
		return nil, nil

	case Outreach7d, Outreach30d, Outreach90d:
		cutoff := e.now().AddDate(0, 0, -windowDays[window])
		ids, err := e.log.ContactedSince(ctx, cutoff, e.cfg.LogScanLimit)
		if err != nil {
			return nil, err
		}
		return newIDSet(ids), nil

	default:
		e.logger.Warn("unrecognized not_within window, ignoring filter", slog.String("window", window))
		return nil, nil
	}
}
