package model

import "time"

// Article data model. Content may embed HTML markup; the store treats it as
// an opaque string. PublishedAt marshals as RFC 3339 on the wire.
type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  int       `json:"categoryId"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    int       `json:"readTime"` // in minutes
	Featured    bool      `json:"featured"`
	Trending    bool      `json:"trending"`
	EditorsPick bool      `json:"editorsPick"`
}
