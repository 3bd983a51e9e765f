package domain

import "time"

// Entry is a registered redirect. The slug is assigned on first
// registration of a unique ID and never regenerated afterwards.
type Entry struct {
	UniqueID  string    `json:"unique_id"`
	FinalURL  string    `json:"final_url"`
	Slug      string    `json:"redirect_slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
