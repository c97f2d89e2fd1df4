package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/calmtide/internal/models"
)

var sessionSeq atomic.Int64

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.BreathSession
}

func NewSession() *SessionBuilder {
	start := time.Date(2026, 10, 18, 7, 30, 0, 0, time.UTC)
	return &SessionBuilder{
		session: models.BreathSession{
			ID:             fmt.Sprintf("session-%d", sessionSeq.Add(1)),
			TechniqueID:    "box",
			TechniqueName:  "Box Breathing",
			Status:         models.StatusPaused,
			StartedAt:      start,
			EndedAt:        start.Add(64 * time.Second),
			ElapsedSeconds: 64,
			Cycles:         4,
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

func (b *SessionBuilder) WithTechnique(id, name string) *SessionBuilder {
	b.session.TechniqueID = id
	b.session.TechniqueName = name
	return b
}

func (b *SessionBuilder) WithStatus(s models.SessionStatus) *SessionBuilder {
	b.session.Status = s
	return b
}

// StartedAt moves the session so it starts at t, keeping its length.
func (b *SessionBuilder) StartedAt(t time.Time) *SessionBuilder {
	length := b.session.EndedAt.Sub(b.session.StartedAt)
	b.session.StartedAt = t
	b.session.EndedAt = t.Add(length)
	return b
}

func (b *SessionBuilder) WithElapsed(seconds, cycles int) *SessionBuilder {
	b.session.ElapsedSeconds = seconds
	b.session.Cycles = cycles
	b.session.EndedAt = b.session.StartedAt.Add(time.Duration(seconds) * time.Second)
	return b
}

func (b *SessionBuilder) Build() models.BreathSession {
	return b.session
}
