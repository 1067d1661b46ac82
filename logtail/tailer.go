// Package logtail bridges the provider's page-based log API into an
// incremental event stream. Each subscription polls at a fixed cadence and
// suppresses re-delivery of already-seen lines with a timestamp high-watermark.
package logtail

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/railboard/railboard/railway"
)

const defaultPageSize = 50

// FetchFunc fetches the most recent limit log entries, newest first. The
// subscriber binds it to a service and environment before tailing.
type FetchFunc func(ctx context.Context, limit int) ([]railway.LogEntry, error)

// Event is one item of a tail stream. Exactly one field is meaningful:
// Connected for the initial acknowledgement, Line for a log line, Err for a
// recoverable fetch failure.
type Event struct {
	Connected bool
	Line      string
	Err       error
}

type Tailer struct {
	interval time.Duration
	pageSize int
}

func New(interval time.Duration) *Tailer {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Tailer{interval: interval, pageSize: defaultPageSize}
}

// Tail starts a polling subscription and returns its event stream. The
// channel is closed when ctx is cancelled; cancellation stops the polling
// timer synchronously so no orphaned loop keeps hitting the API.
func (t *Tailer) Tail(ctx context.Context, subscriberID string, fetch FetchFunc) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		sub := subscription{watermark: ""}

		if !send(ctx, events, Event{Connected: true}) {
			return
		}
		if !sub.poll(ctx, events, fetch, t.pageSize) {
			return
		}

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Debug().Str("subscriber", subscriberID).Msg("Log tail closed")
				return
			case <-ticker.C:
				if !sub.poll(ctx, events, fetch, t.pageSize) {
					return
				}
			}
		}
	}()

	return events
}

// subscription holds per-subscriber state; subscriptions share nothing.
type subscription struct {
	// watermark is the timestamp of the newest emitted line. RFC 3339
	// timestamps compare correctly as strings, matching the provider's wire
	// format. Never regresses.
	watermark string
}

// poll runs one fetch cycle. A fetch failure is reported as an error event
// and the stream continues; the fixed interval is the retry policy. Returns
// false once ctx is cancelled.
func (s *subscription) poll(ctx context.Context, events chan<- Event, fetch FetchFunc, limit int) bool {
	entries, err := fetch(ctx, limit)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		return send(ctx, events, Event{Err: err})
	}

	// The provider returns newest first; emit in chronological order.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]

		if s.watermark != "" && (entry.Timestamp == "" || entry.Timestamp <= s.watermark) {
			continue
		}

		if !send(ctx, events, Event{Line: railway.FormatLine(entry)}) {
			return false
		}
		if entry.Timestamp > s.watermark {
			s.watermark = entry.Timestamp
		}
	}
	return true
}

func send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case <-ctx.Done():
		return false
	case events <- ev:
		return true
	}
}
