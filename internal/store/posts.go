package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"samko/internal/model"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Posts owns the blog post collection. One instance is shared by every handler;
// all writes go through mu so the slug check and the insert happen together.
type Posts struct {
	mu       sync.RWMutex
	posts    []model.BlogPost // newest first
	journal  Journal
	logger   *zap.Logger
	now      func() time.Time
	validate *validator.Validate
}

var _ PostStore = (*Posts)(nil)

// Option configures a Posts store.
type Option func(*Posts)

// WithJournal mirrors every mutation into j and restores the collection from it.
func WithJournal(j Journal) Option {
	return func(p *Posts) { p.journal = j }
}

// WithClock overrides time.Now for PublishedAt/UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(p *Posts) { p.now = now }
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Posts) { p.logger = l }
}

// NewPosts builds the store. Without a journal, or with an empty one, it starts from the seed posts.
func NewPosts(opts ...Option) (*Posts, error) {
	p := &Posts{
		logger:   zap.NewNop(),
		now:      time.Now,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.journal == nil {
		p.posts = model.SeedPosts()
		return p, nil
	}

	saved, err := p.journal.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	if len(saved) > 0 {
		sortNewestFirst(saved)
		p.posts = saved
		p.logger.Info("Restored posts from journal", zap.Int("count", len(saved)))
		return p, nil
	}

	p.posts = model.SeedPosts()
	for _, post := range p.posts {
		if err := p.journal.Put(post); err != nil {
			return nil, fmt.Errorf("failed to seed journal: %w", err)
		}
	}
	p.logger.Info("Seeded posts", zap.Int("count", len(p.posts)))
	return p, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so errors read "authorRole", not "AuthorRole".
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func sortNewestFirst(posts []model.BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
}

// List returns the posts matching f, newest first.
// A slug filter bypasses every other filter and yields one post or ErrNotFound.
func (p *Posts) List(ctx context.Context, f ListFilter) ([]model.BlogPost, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if f.Slug != "" {
		for _, post := range p.posts {
			if post.Slug == f.Slug {
				return []model.BlogPost{post.Clone()}, nil
			}
		}
		return nil, ErrNotFound
	}

	published := true
	if f.Published != nil {
		published = *f.Published
	}

	result := make([]model.BlogPost, 0, len(p.posts))
	for _, post := range p.posts {
		if f.Category != "" && !strings.EqualFold(post.Category, f.Category) {
			continue
		}
		if f.Featured != nil && post.Featured != *f.Featured {
			continue
		}
		if post.Published != published {
			continue
		}
		result = append(result, post.Clone())
	}

	sortNewestFirst(result)

	if f.Limit != nil && *f.Limit >= 0 && *f.Limit < len(result) {
		result = result[:*f.Limit]
	}
	return result, nil
}

// Get looks a post up by id, then by slug.
func (p *Posts) Get(ctx context.Context, key string) (*model.BlogPost, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if i := p.indexOf(key); i >= 0 {
		post := p.posts[i].Clone()
		return &post, nil
	}
	for _, post := range p.posts {
		if post.Slug == key {
			out := post.Clone()
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Create validates in, derives the slug and read time, and inserts the post at the front.
func (p *Posts) Create(ctx context.Context, in CreateInput) (*model.BlogPost, error) {
	if err := p.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ValidationError{Field: verrs[0].Field()}
		}
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	slug := model.GenerateSlug(in.Title)
	if p.slugTaken(slug, "") {
		return nil, ErrConflict
	}

	now := p.now().UTC()
	post := model.BlogPost{
		ID:          model.GenerateID(),
		Title:       in.Title,
		Slug:        slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Category:    in.Category,
		Author:      in.Author,
		AuthorRole:  in.AuthorRole,
		PublishedAt: now,
		UpdatedAt:   now,
		ReadTime:    model.CalculateReadTime(in.Content),
		Image:       model.DefaultImage,
		Featured:    in.Featured,
		Published:   true,
		Tags:        []string{},
	}
	if in.PublishedAt != nil {
		post.PublishedAt = in.PublishedAt.UTC()
	}
	if in.Image != "" {
		post.Image = in.Image
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if in.Tags != nil {
		post.Tags = append([]string{}, in.Tags...)
	}

	if p.journal != nil {
		if err := p.journal.Put(post); err != nil {
			return nil, fmt.Errorf("failed to persist post: %w", err)
		}
	}

	p.posts = append([]model.BlogPost{post}, p.posts...)
	p.logger.Info("Post created", zap.String("id", post.ID), zap.String("slug", post.Slug))

	out := post.Clone()
	return &out, nil
}

// Update applies the non-empty fields of in to the post with the given id.
func (p *Posts) Update(ctx context.Context, id string, in UpdateInput) (*model.BlogPost, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	post := p.posts[i].Clone()

	if set(in.Title) && *in.Title != post.Title {
		slug := model.GenerateSlug(*in.Title)
		if p.slugTaken(slug, id) {
			return nil, ErrConflict
		}
		post.Title = *in.Title
		post.Slug = slug
	}
	if set(in.Content) {
		post.Content = *in.Content
		post.ReadTime = model.CalculateReadTime(post.Content)
	}
	assign(&post.Excerpt, in.Excerpt)
	assign(&post.Category, in.Category)
	assign(&post.Author, in.Author)
	assign(&post.AuthorRole, in.AuthorRole)
	assign(&post.Image, in.Image)
	if in.Featured != nil {
		post.Featured = *in.Featured
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if in.Tags != nil {
		post.Tags = append([]string{}, in.Tags...)
	}
	post.UpdatedAt = p.now().UTC()

	if p.journal != nil {
		if err := p.journal.Put(post); err != nil {
			return nil, fmt.Errorf("failed to persist post: %w", err)
		}
	}

	p.posts[i] = post
	p.logger.Info("Post updated", zap.String("id", id), zap.String("slug", post.Slug))

	out := post.Clone()
	return &out, nil
}

// Delete removes the post with the given id and returns it.
func (p *Posts) Delete(ctx context.Context, id string) (*model.BlogPost, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := p.posts[i]

	if p.journal != nil {
		if err := p.journal.Remove(id); err != nil {
			return nil, fmt.Errorf("failed to remove post: %w", err)
		}
	}

	p.posts = append(p.posts[:i:i], p.posts[i+1:]...)
	p.logger.Info("Post deleted", zap.String("id", id))

	return &removed, nil
}

// Len reports how many posts the store holds, drafts included.
func (p *Posts) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.posts)
}

// indexOf must be called with mu held.
func (p *Posts) indexOf(id string) int {
	for i := range p.posts {
		if p.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// slugTaken must be called with mu held. The post with id except is ignored.
// Get resolves ids and slugs from one namespace, so a slug equal to another
// post's id counts as taken.
func (p *Posts) slugTaken(slug, except string) bool {
	for _, post := range p.posts {
		if post.ID == except {
			continue
		}
		if post.Slug == slug || post.ID == slug {
			return true
		}
	}
	return false
}

func set(s *string) bool {
	return s != nil && *s != ""
}

func assign(dst *string, src *string) {
	if set(src) {
		*dst = *src
	}
}
