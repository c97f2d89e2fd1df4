package database

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/calmtide/internal/models"
)

const sessionColumns = `id, technique_id, technique_name, status, started_at, ended_at, elapsed_seconds, cycles`

// RecordSession stores a finished breathing session.
func (d *Database) RecordSession(ctx context.Context, s models.BreathSession) error {
	if err := validateSession(s); err != nil {
		return wrapSessionErr("record", s.ID, err)
	}
	status := s.Status
	if status == "" {
		status = models.StatusPaused
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.TechniqueID, s.TechniqueName, string(status),
		s.StartedAt.UTC(), s.EndedAt.UTC(), s.ElapsedSeconds, s.Cycles)
	if err != nil {
		return wrapSessionErr("record", s.ID, err)
	}
	d.log.Debug().Str("id", s.ID).Str("technique", s.TechniqueID).Int("seconds", s.ElapsedSeconds).Msg("session recorded")
	return nil
}

// ListSessions returns the most recent sessions first. A non-positive limit
// returns the whole history.
func (d *Database) ListSessions(ctx context.Context, limit int) ([]models.BreathSession, error) {
	return d.QuerySessions(ctx, NewSessionQuery().Limit(limit))
}

// QuerySessions runs q and scans every row.
func (d *Database) QuerySessions(ctx context.Context, q *SessionQuery) ([]models.BreathSession, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	defer rows.Close()

	var sessions []models.BreathSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, wrapSessionErr("list", "", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	return sessions, nil
}

// SessionStats aggregates the history per technique, longest practice first.
func (d *Database) SessionStats(ctx context.Context) ([]models.TechniqueStats, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT technique_id, MAX(technique_name), COUNT(*),
		       COALESCE(SUM(elapsed_seconds), 0), COALESCE(SUM(cycles), 0)
		FROM sessions
		GROUP BY technique_id
		ORDER BY SUM(elapsed_seconds) DESC, technique_id ASC`)
	if err != nil {
		return nil, wrapSessionErr("stats", "", err)
	}
	defer rows.Close()

	var stats []models.TechniqueStats
	for rows.Next() {
		var st models.TechniqueStats
		if err := rows.Scan(&st.TechniqueID, &st.TechniqueName, &st.Sessions, &st.TotalSeconds, &st.TotalCycles); err != nil {
			return nil, wrapSessionErr("stats", "", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("stats", "", err)
	}
	return stats, nil
}

// ClearSessions deletes the whole history and reports how many rows went.
func (d *Database) ClearSessions(ctx context.Context) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, wrapSessionErr("clear", "", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapSessionErr("clear", "", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (models.BreathSession, error) {
	var s models.BreathSession
	var status string
	err := r.Scan(&s.ID, &s.TechniqueID, &s.TechniqueName, &status, &s.StartedAt, &s.EndedAt, &s.ElapsedSeconds, &s.Cycles)
	s.Status = models.SessionStatus(status)
	return s, err
}

func validateSession(s models.BreathSession) error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	case s.TechniqueID == "":
		return fmt.Errorf("%w: missing technique", ErrInvalidRecord)
	case s.ElapsedSeconds < 0 || s.Cycles < 0:
		return fmt.Errorf("%w: negative counters", ErrInvalidRecord)
	case s.EndedAt.Before(s.StartedAt):
		return fmt.Errorf("%w: session ends before it starts", ErrInvalidRecord)
	}
	return nil
}
