package model

import "time"

// Construction is a physical structure within a project that documents attach
// to. Full construction CRUD lives in the management console; this service
// keeps the minimal record needed to resolve listings and foreign keys.
type Construction struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
