package models

import "time"

// Snapshot is an archived copy of the roster taken at a point in time
type Snapshot struct {
	ID        int       `json:"id"`
	Note      string    `json:"note"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID implements the quiet-mode identifier interface of the cli package
func (s *Snapshot) GetID() int {
	return s.ID
}
