package models

import "time"

// Timestamp is seconds since the Unix epoch with sub-second precision,
// matching the REAL columns in the library table.
type Timestamp float64

// Now returns the current wall-clock time as a Timestamp.
func Now() Timestamp {
	return Timestamp(float64(time.Now().UnixNano()) / float64(time.Second))
}

// Time converts the timestamp back to a time.Time for the caller. The core
// never formats dates; that belongs to the presentation layer.
func (t Timestamp) Time() time.Time {
	sec := int64(t)
	nsec := int64((float64(t) - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

type Note struct {
	ID         int64     `json:"id"`
	Owner      *int64    `json:"owner,omitempty"`
	Content    string    `json:"content"`
	Creation   Timestamp `json:"creation"`
	LastUpdate Timestamp `json:"last_update"`
}

type Session struct {
	ID         string    `json:"id"`
	AccountID  int64     `json:"account_id"`
	Username   string    `json:"username"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}
