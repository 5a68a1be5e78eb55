package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"samko/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-shiori/go-readability"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockScraper struct {
	MockTitle   string
	MockContent string
	ShouldFail  bool
}

// Scrape simulates article scraping
func (m *MockScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	if m.ShouldFail {
		return nil, fmt.Errorf("simulated 404 error")
	}
	return &readability.Article{
		Title:   m.MockTitle,
		Content: m.MockContent,
		Excerpt: "A short summary",
	}, nil
}

func newTestWorker(t *testing.T, q Queue, scraper Scraper) (*Worker, *store.Posts) {
	t.Helper()
	posts, err := store.NewPosts()
	require.NoError(t, err)

	w := NewWorker(posts, store.NewCategories(), q, zap.NewNop())
	w.scraper = scraper
	return w, posts
}

// runBriefly starts the worker and stops it once the store holds want posts.
func runBriefly(t *testing.T, w *Worker, posts *store.Posts, want int) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	assert.Eventually(t, func() bool { return posts.Len() == want }, time.Second, 10*time.Millisecond)
}

// TestWorker_ImportsDraft checks that a scraped article becomes an unpublished post
func TestWorker_ImportsDraft(t *testing.T) {
	q := NewMemoryQueue(10)
	w, posts := newTestWorker(t, q, &MockScraper{
		MockTitle:   "Mocked Title",
		MockContent: "<p>This is fake content</p>",
	})

	job := NewImportJob("http://fake-url.com")
	job.Category = "maintenance"
	require.NoError(t, q.Push(context.Background(), job))

	runBriefly(t, w, posts, 7)

	post, err := posts.Get(context.Background(), "mocked-title")
	require.NoError(t, err)
	assert.False(t, post.Published)
	assert.Equal(t, "Maintenance", post.Category)
	assert.Equal(t, DefaultAuthor, post.Author)
	assert.Equal(t, DefaultAuthorRole, post.AuthorRole)
	assert.Equal(t, "A short summary", post.Excerpt)
	assert.Equal(t, "<p>This is fake content</p>", post.Content)
	assert.Equal(t, []string{ImportedTag}, post.Tags)

	// Drafts stay out of the public listing
	public, err := posts.List(context.Background(), store.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, public, 6)
}

// TestWorker_HandlesScrapeFailure checks that a failed scrape leaves the store untouched
func TestWorker_HandlesScrapeFailure(t *testing.T) {
	q := NewMemoryQueue(10)
	w, posts := newTestWorker(t, q, &MockScraper{ShouldFail: true})

	require.NoError(t, q.Push(context.Background(), NewImportJob("http://bad-url.com")))

	ctx, cancel := context.WithCancel(context.Background())
	go w.Start(ctx)
	assert.Eventually(t, func() bool { return len(q.jobs) == 0 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	cancel()

	assert.Equal(t, 6, posts.Len())
}

func TestWorker_SkipsIncompleteArticle(t *testing.T) {
	q := NewMemoryQueue(10)
	// No title: the store rejects it and the worker keeps going
	w, posts := newTestWorker(t, q, &MockScraper{MockContent: "<p>body</p>"})

	w.processJob(context.Background(), NewImportJob("http://no-title.com"))
	assert.Equal(t, 6, posts.Len())
}

func TestWorker_DuplicateTitleIsIgnored(t *testing.T) {
	q := NewMemoryQueue(10)
	w, posts := newTestWorker(t, q, &MockScraper{MockTitle: "Same", MockContent: "<p>x</p>"})

	w.processJob(context.Background(), NewImportJob("http://one.com"))
	w.processJob(context.Background(), NewImportJob("http://two.com"))
	assert.Equal(t, 7, posts.Len())
}

func TestWorker_RedisQueue(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	q := NewRedisQueue(rdb)

	job := NewImportJob("http://queued.com")
	job.Author = "Guest"
	require.NoError(t, q.Push(context.Background(), job))

	queued, err := mr.List(importQueueKey)
	require.NoError(t, err)
	assert.Len(t, queued, 1, "Should have 1 item in queue")

	w, posts := newTestWorker(t, q, &MockScraper{MockTitle: "From Redis", MockContent: "<p>hi</p>"})
	runBriefly(t, w, posts, 7)

	post, err := posts.Get(context.Background(), "from-redis")
	require.NoError(t, err)
	assert.Equal(t, "Guest", post.Author)
	assert.Equal(t, DefaultCategory, post.Category)
}

// blockingScraper holds a scrape open until release is closed
type blockingScraper struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	close(b.started)
	<-b.release
	return &readability.Article{Title: "Late Import", Content: "<p>body</p>", Excerpt: "x"}, nil
}

// TestWorker_StartFinishesInFlightJob checks that Start only returns after the
// current job is stored, so callers can close the journal once it returns
func TestWorker_StartFinishesInFlightJob(t *testing.T) {
	q := NewMemoryQueue(10)
	scraper := &blockingScraper{started: make(chan struct{}), release: make(chan struct{})}
	w, posts := newTestWorker(t, q, scraper)
	require.NoError(t, q.Push(context.Background(), NewImportJob("http://slow.com")))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	<-scraper.started
	cancel()

	select {
	case <-done:
		t.Fatal("Start returned while a job was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(scraper.release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
	assert.Equal(t, 7, posts.Len())
}

func TestMemoryQueue_Full(t *testing.T) {
	q := NewMemoryQueue(1)
	require.NoError(t, q.Push(context.Background(), NewImportJob("http://a.com")))
	assert.ErrorIs(t, q.Push(context.Background(), NewImportJob("http://b.com")), ErrQueueFull)
}
