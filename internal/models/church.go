package models

import "time"

// Church is the tenant every other row hangs off (table igrejas).
type Church struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
