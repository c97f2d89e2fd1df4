package models

import "time"

// SessionStatus describes how a breathing session ended.
type SessionStatus string

const (
	StatusPaused      SessionStatus = "paused"
	StatusSwitched    SessionStatus = "switched"
	StatusInterrupted SessionStatus = "interrupted"
)

// BreathSession is the summary of one uninterrupted run of the breath cycle,
// from the moment it was started until it was paused, switched or torn down.
type BreathSession struct {
	ID             string
	TechniqueID    string
	TechniqueName  string
	Status         SessionStatus
	StartedAt      time.Time
	EndedAt        time.Time
	ElapsedSeconds int
	Cycles         int
}

// Duration returns the active breathing time of the session.
func (s BreathSession) Duration() time.Duration {
	return time.Duration(s.ElapsedSeconds) * time.Second
}

// TechniqueStats aggregates the recorded sessions of one technique.
type TechniqueStats struct {
	TechniqueID   string
	TechniqueName string
	Sessions      int
	TotalSeconds  int
	TotalCycles   int
}

// Total returns the accumulated breathing time.
func (s TechniqueStats) Total() time.Duration {
	return time.Duration(s.TotalSeconds) * time.Second
}
