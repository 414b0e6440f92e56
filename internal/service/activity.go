package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"studioboard/internal/domain"
	"studioboard/internal/repo"
)

// DefaultUser is recorded when no acting user is supplied.
const DefaultUser = "System"

// ActivityLogger writes audit trail entries: durable store first, the
// capped in-memory buffer when that fails (outside production only).
// Logging is a best-effort side channel and never surfaces an error to
// the operation being audited.
type ActivityLogger struct {
	durable repo.ActivityStore
	buffer  *repo.ActivityBuffer // nil in production
	log     zerolog.Logger
}

func NewActivityLogger(durable repo.ActivityStore, buffer *repo.ActivityBuffer, log zerolog.Logger) *ActivityLogger {
	return &ActivityLogger{durable: durable, buffer: buffer, log: log}
}

// Log records one entry. Failures are swallowed.
func (l *ActivityLogger) Log(ctx context.Context, action domain.Action, entity, name string) {
	entry := domain.Activity{
		Action:      action,
		Entity:      entity,
		Description: describe(action, entity, name),
		User:        DefaultUser,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := l.durable.Append(ctx, entry); err != nil {
		if l.buffer != nil {
			l.buffer.Append(entry)
		}
		l.log.Debug().Err(err).Str("entity", entity).Str("action", string(action)).
			Msg("activity entry kept in memory only")
	}
}

// Recent returns the n newest entries from whichever store currently
// serves reads.
func (l *ActivityLogger) Recent(ctx context.Context, n int) []domain.Activity {
	list, err := l.durable.Recent(ctx, n)
	if err == nil {
		return list
	}
	if l.buffer != nil {
		return l.buffer.Recent(n)
	}
	return []domain.Activity{}
}

func describe(action domain.Action, entity, name string) string {
	verb := map[domain.Action]string{
		domain.ActionCreate:   "created",
		domain.ActionUpdate:   "updated",
		domain.ActionDelete:   "deleted",
		domain.ActionComplete: "completed",
	}[action]
	if verb == "" {
		verb = string(action)
	}
	return fmt.Sprintf("%s %s %q", verb, entity, name)
}
