package database

import (
	"context"
	"io"

	"github.com/akyairhashvil/calmtide/internal/models"
)

// SessionRepository defines breathing-history operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.BreathSession) error
	ListSessions(ctx context.Context, limit int) ([]models.BreathSession, error)
	QuerySessions(ctx context.Context, q *SessionQuery) ([]models.BreathSession, error)
	SessionStats(ctx context.Context) ([]models.TechniqueStats, error)
	ClearSessions(ctx context.Context) (int64, error)
	ExportSessions(ctx context.Context, w io.Writer, q *SessionQuery) error
}

// SettingsRepository defines preference storage.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SessionRepository
	SettingsRepository
	Close() error
}

var _ Repository = (*Database)(nil)
