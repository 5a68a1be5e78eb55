package model

import (
	"time"
)

// DefaultImage is used when a post is created without an image.
const DefaultImage = "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?q=80&w=800"

// BlogPost is a single article in the company blog.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	AuthorRole  string    `json:"authorRole"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ReadTime    string    `json:"readTime"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	Tags        []string  `json:"tags"`
}

// Clone returns a copy that shares no slices with p.
func (p BlogPost) Clone() BlogPost {
	out := p
	out.Tags = append([]string{}, p.Tags...)
	return out
}

// BlogCategory groups posts on the blog index.
type BlogCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// OilPrice is one commodity quote shown in the ticker widget.
type OilPrice struct {
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Currency      string    `json:"currency"`
	Unit          string    `json:"unit"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
