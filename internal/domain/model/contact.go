package model

import "time"

// Contact is an inbound message from a site visitor. CreatedAt is assigned
// server-side at creation time; client-supplied values are ignored.
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
