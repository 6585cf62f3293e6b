package model

// Category groups articles under a URL-safe slug. Created once during
// seeding, never updated or deleted afterwards.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
