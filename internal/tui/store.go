package tui

import (
	"context"

	"github.com/akyairhashvil/calmtide/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui

// SessionStore is the persistence the TUI needs. *database.Database
// satisfies it.
type SessionStore interface {
	RecordSession(ctx context.Context, s models.BreathSession) error
	ListSessions(ctx context.Context, limit int) ([]models.BreathSession, error)
	SessionStats(ctx context.Context) ([]models.TechniqueStats, error)
	ClearSessions(ctx context.Context) (int64, error)
	SetSetting(ctx context.Context, key, value string) error
}
