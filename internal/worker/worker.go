package worker

import (
	"context"
	"errors"
	"time"

	"samko/internal/store"

	"github.com/go-shiori/go-readability"
	"go.uber.org/zap"
)

// Defaults applied to imported drafts when the job does not say otherwise.
const (
	DefaultCategory   = "Industry Trends"
	DefaultAuthor     = "SAMKO Editorial"
	DefaultAuthorRole = "Contributor"
	ImportedTag       = "imported"
)

// Scraper defines the interface for downloading web pages.
// This allows us to mock the "Download" step in tests.
type Scraper interface {
	Scrape(url string, timeout time.Duration) (*readability.Article, error)
}

// DefaultScraper is the real implementation that uses the internet
type DefaultScraper struct{}

func (s *DefaultScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	art, err := readability.FromURL(url, timeout)
	return &art, err
}

// Worker drains the import queue and files every scraped article as a draft post.
type Worker struct {
	posts      store.PostStore
	categories *store.Categories
	queue      Queue
	logger     *zap.Logger
	scraper    Scraper
	timeout    time.Duration
}

// NewWorker initializes the worker with the DefaultScraper
func NewWorker(posts store.PostStore, categories *store.Categories, queue Queue, logger *zap.Logger) *Worker {
	return &Worker{
		posts:      posts,
		categories: categories,
		queue:      queue,
		logger:     logger,
		scraper:    &DefaultScraper{},
		timeout:    30 * time.Second,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Import worker started. Waiting for jobs...")

	for {
		job, err := w.queue.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("Import worker shutting down")
				return
			}
			w.logger.Error("Queue error", zap.Error(err))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job ImportJob) {
	logger := w.logger.With(zap.String("job_id", job.ID.String()), zap.String("url", job.URL))
	logger.Info("Import started")

	article, err := w.scraper.Scrape(job.URL, w.timeout)
	if err != nil {
		logger.Error("Scraping failed", zap.Error(err))
		return
	}

	published := false
	post, err := w.posts.Create(ctx, store.CreateInput{
		Title:      article.Title,
		Excerpt:    article.Excerpt,
		Content:    article.Content,
		Category:   w.category(job.Category),
		Author:     orDefault(job.Author, DefaultAuthor),
		AuthorRole: orDefault(job.AuthorRole, DefaultAuthorRole),
		Published:  &published,
		Tags:       []string{ImportedTag},
	})
	if err != nil {
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			logger.Warn("Scraped article is incomplete", zap.String("field", verr.Field))
		case errors.Is(err, store.ErrConflict):
			logger.Warn("Post with this title already exists", zap.String("title", article.Title))
		default:
			logger.Error("Failed to save draft", zap.Error(err))
		}
		return
	}

	logger.Info("Import complete", zap.String("post_id", post.ID), zap.String("slug", post.Slug))
}

// category maps a slug or name onto the category's display name.
func (w *Worker) category(key string) string {
	if key == "" {
		return DefaultCategory
	}
	if cat, ok := w.categories.Find(key); ok {
		return cat.Name
	}
	return key
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
