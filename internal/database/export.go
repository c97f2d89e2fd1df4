package database

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

// ExportSession is the JSON shape of one exported session.
type ExportSession struct {
	ID             string `json:"id"`
	TechniqueID    string `json:"technique_id"`
	TechniqueName  string `json:"technique_name"`
	Status         string `json:"status"`
	StartedAt      string `json:"started_at"`
	EndedAt        string `json:"ended_at"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Cycles         int    `json:"cycles"`
}

// ExportData is the document written by ExportSessions.
type ExportData struct {
	Version    int             `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Sessions   []ExportSession `json:"sessions"`
}

const exportVersion = 1

// ExportSessions writes the sessions matched by q as indented JSON. A nil
// query exports the whole history.
func (d *Database) ExportSessions(ctx context.Context, w io.Writer, q *SessionQuery) error {
	if q == nil {
		q = NewSessionQuery()
	}
	sessions, err := d.QuerySessions(ctx, q)
	if err != nil {
		return err
	}
	data := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sessions:   make([]ExportSession, 0, len(sessions)),
	}
	for _, s := range sessions {
		data.Sessions = append(data.Sessions, ExportSession{
			ID:             s.ID,
			TechniqueID:    s.TechniqueID,
			TechniqueName:  s.TechniqueName,
			Status:         string(s.Status),
			StartedAt:      s.StartedAt.UTC().Format(time.RFC3339),
			EndedAt:        s.EndedAt.UTC().Format(time.RFC3339),
			ElapsedSeconds: s.ElapsedSeconds,
			Cycles:         s.Cycles,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return wrapSessionErr("export", "", err)
	}
	return nil
}
