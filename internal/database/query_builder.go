package database

import (
	"fmt"
	"strings"
	"time"
)

// SessionQuery builds a SELECT over the sessions table.
type SessionQuery struct {
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewSessionQuery() *SessionQuery {
	return &SessionQuery{orderBy: "started_at DESC, id ASC"}
}

func (q *SessionQuery) Where(filter string, args ...interface{}) *SessionQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// WhereTechnique keeps sessions of one technique; empty id is ignored.
func (q *SessionQuery) WhereTechnique(id string) *SessionQuery {
	if id == "" {
		return q
	}
	return q.Where("technique_id = ?", id)
}

// WhereSince keeps sessions started at or after t; the zero time is ignored.
func (q *SessionQuery) WhereSince(t time.Time) *SessionQuery {
	if t.IsZero() {
		return q
	}
	return q.Where("started_at >= ?", t.UTC())
}

func (q *SessionQuery) OrderBy(orderBy string) *SessionQuery {
	q.orderBy = orderBy
	return q
}

// Limit caps the result; non-positive means no limit.
func (q *SessionQuery) Limit(limit int) *SessionQuery {
	q.limit = limit
	return q
}

func (q *SessionQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM sessions", sessionColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
