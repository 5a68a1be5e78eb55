package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"samko/internal/model"
)

var (
	ErrNotFound = errors.New("post not found")
	ErrConflict = errors.New("a post with this title already exists")
)

// ValidationError reports the first required field missing from a create request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ListFilter narrows List. Nil pointers mean "not filtered", except Published,
// which defaults to true so drafts stay hidden unless asked for.
type ListFilter struct {
	Category  string
	Featured  *bool
	Published *bool
	Slug      string
	Limit     *int
}

// CreateInput carries the fields accepted when creating a post.
type CreateInput struct {
	Title       string     `json:"title" validate:"required"`
	Excerpt     string     `json:"excerpt" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Author      string     `json:"author" validate:"required"`
	AuthorRole  string     `json:"authorRole" validate:"required"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Image       string     `json:"image,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
	Published   *bool      `json:"published,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// UpdateInput is a partial update. Nil fields, and empty strings, keep their current value.
type UpdateInput struct {
	Title      *string  `json:"title,omitempty"`
	Excerpt    *string  `json:"excerpt,omitempty"`
	Content    *string  `json:"content,omitempty"`
	Category   *string  `json:"category,omitempty"`
	Author     *string  `json:"author,omitempty"`
	AuthorRole *string  `json:"authorRole,omitempty"`
	Image      *string  `json:"image,omitempty"`
	Featured   *bool    `json:"featured,omitempty"`
	Published  *bool    `json:"published,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// PostStore is the blog post collection used by the HTTP layer and the import worker.
type PostStore interface {
	List(ctx context.Context, f ListFilter) ([]model.BlogPost, error)
	Get(ctx context.Context, key string) (*model.BlogPost, error)
	Create(ctx context.Context, in CreateInput) (*model.BlogPost, error)
	Update(ctx context.Context, id string, in UpdateInput) (*model.BlogPost, error)
	Delete(ctx context.Context, id string) (*model.BlogPost, error)
}

// Journal persists a copy of every mutation. Posts restores from it on open.
type Journal interface {
	Load() ([]model.BlogPost, error)
	Put(post model.BlogPost) error
	Remove(id string) error
	Close() error
}
