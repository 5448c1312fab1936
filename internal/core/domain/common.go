package domain

import "time"

// Entity holds the identity and timestamps shared by every persisted record.
// The backend is the system of record for all three fields; clients never
// forge CreatedAt past creation.
type Entity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID returns the opaque unique identifier of the record.
func (e Entity) EntityID() string {
	return e.ID
}

// SetIdentity assigns a fresh identity at creation time. CreatedAt and
// UpdatedAt are equal immediately after creation.
func (e *Entity) SetIdentity(id string, now time.Time) {
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
}

// Touch refreshes UpdatedAt after a mutation.
func (e *Entity) Touch(now time.Time) {
	e.UpdatedAt = now
}

// Timestamps returns the audit timestamps; used by sort helpers.
func (e Entity) Timestamps() (created, updated time.Time) {
	return e.CreatedAt, e.UpdatedAt
}
