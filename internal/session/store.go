package session

import (
	"context"
	"errors"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

var ErrNotFound = errors.New("session not found")

// Store keeps one schedule table per session. Tables are replaced wholesale
// on Put; sessions never share a table.
type Store interface {
	Get(ctx context.Context, sessionID string) (domain.ScheduleTable, error)
	Put(ctx context.Context, sessionID string, table domain.ScheduleTable) error
	Delete(ctx context.Context, sessionID string) error
}

// copyTable deep-copies a table so callers can mutate their copy without
// aliasing the stored rows.
func copyTable(table domain.ScheduleTable) domain.ScheduleTable {
	out := make(domain.ScheduleTable, len(table))
	copy(out, table)
	for i := range out {
		breaks := make([]domain.Interval, len(table[i].Breaks))
		copy(breaks, table[i].Breaks)
		out[i].Breaks = breaks
	}
	return out
}
