package leaderboard

import "time"

// SetNowFunc pins the scorer clock in tests.
func (s *Scorer) SetNowFunc(now func() time.Time) {
	s.now = now
}
