package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/habiutomo/portal-berita/internal/model"
)

var (
	// ErrNotFound signals that a slug or id did not resolve.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals malformed creation input, such as an article
	// referencing a category that does not exist.
	ErrValidation = errors.New("validation error")
)

// Store is the single source of truth for categories and articles. It assigns
// sequential ids starting at 1 per entity type and keeps records in insertion
// order. Records are immutable once created, so read operations hand out
// shared pointers; list operations always return freshly allocated slices.
//
// Reads are safe for concurrent use. Writes happen during seeding in this
// system, but are still serialized under the lock in case a host exposes them
// at runtime.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	categories []*model.Category
	articles   []*model.Article

	nextCategoryID int
	nextArticleID  int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to normalize zero publication times and
// to anchor seed data. Tests use this for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now:            time.Now,
		nextCategoryID: 1,
		nextArticleID:  1,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// InsertCategory carries the caller-supplied fields for CreateCategory.
type InsertCategory struct {
	Name string
	Slug string
}

// InsertArticle carries the caller-supplied fields for CreateArticle.
// Boolean flags default to false; a zero PublishedAt is replaced with the
// store clock's current time.
type InsertArticle struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	ImageURL    string
	CategoryID  int
	Author      string
	PublishedAt time.Time
	ReadTime    int
	Featured    bool
	Trending    bool
	EditorsPick bool
}

// CreateCategory assigns the next sequential id and stores the record.
// Slug uniqueness is not enforced here; callers pre-validate, and slug
// lookups resolve collisions first-created-wins.
func (s *Store) CreateCategory(ins InsertCategory) (*model.Category, error) {
	if strings.TrimSpace(ins.Name) == "" || strings.TrimSpace(ins.Slug) == "" {
		return nil, fmt.Errorf("category name and slug are required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := &model.Category{
		ID:   s.nextCategoryID,
		Name: ins.Name,
		Slug: ins.Slug,
	}
	s.nextCategoryID++
	s.categories = append(s.categories, category)

	return category, nil
}

// CreateArticle assigns the next sequential id, normalizes the publication
// time to UTC and stores the record. The category reference is validated
// eagerly: a dangling CategoryID fails with ErrValidation instead of being
// stored.
func (s *Store) CreateArticle(ins InsertArticle) (*model.Article, error) {
	if strings.TrimSpace(ins.Title) == "" || strings.TrimSpace(ins.Slug) == "" {
		return nil, fmt.Errorf("article title and slug are required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryByIDLocked(ins.CategoryID) == nil {
		return nil, fmt.Errorf("article %q references unknown category %d: %w", ins.Slug, ins.CategoryID, ErrValidation)
	}

	publishedAt := ins.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = s.now()
	}

	article := &model.Article{
		ID:          s.nextArticleID,
		Title:       ins.Title,
		Slug:        ins.Slug,
		Content:     ins.Content,
		Excerpt:     ins.Excerpt,
		ImageURL:    ins.ImageURL,
		CategoryID:  ins.CategoryID,
		Author:      ins.Author,
		PublishedAt: publishedAt.UTC(),
		ReadTime:    ins.ReadTime,
		Featured:    ins.Featured,
		Trending:    ins.Trending,
		EditorsPick: ins.EditorsPick,
	}
	s.nextArticleID++
	s.articles = append(s.articles, article)

	return article, nil
}

// Categories returns all categories in insertion order.
func (s *Store) Categories() []*model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Category, len(s.categories))
	copy(out, s.categories)

	return out
}

func (s *Store) CategoryByID(id int) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category := s.categoryByIDLocked(id); category != nil {
		return category, nil
	}

	return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
}

// CategoryBySlug scans in insertion order and returns the first match, so
// colliding slugs resolve to the earliest-created record.
func (s *Store) CategoryBySlug(slug string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, category := range s.categories {
		if category.Slug == slug {
			return category, nil
		}
	}

	return nil, fmt.Errorf("category %q: %w", slug, ErrNotFound)
}

// Articles returns all articles in insertion order, with no recency
// guarantee.
func (s *Store) Articles() []*model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Article, len(s.articles))
	copy(out, s.articles)

	return out
}

func (s *Store) ArticleByID(id int) (*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, article := range s.articles {
		if article.ID == id {
			return article, nil
		}
	}

	return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
}

func (s *Store) ArticleBySlug(slug string) (*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, article := range s.articles {
		if article.Slug == slug {
			return article, nil
		}
	}

	return nil, fmt.Errorf("article %q: %w", slug, ErrNotFound)
}

// FeaturedArticles returns articles flagged featured, most recent first.
func (s *Store) FeaturedArticles() []*model.Article {
	return s.selectArticles(func(a *model.Article) bool { return a.Featured })
}

// TrendingArticles returns articles flagged trending, most recent first.
func (s *Store) TrendingArticles() []*model.Article {
	return s.selectArticles(func(a *model.Article) bool { return a.Trending })
}

// EditorsPickArticles returns articles flagged as editor's picks, most
// recent first.
func (s *Store) EditorsPickArticles() []*model.Article {
	return s.selectArticles(func(a *model.Article) bool { return a.EditorsPick })
}

// LatestArticles returns up to limit articles, most recent first. A
// non-positive limit yields an empty slice.
func (s *Store) LatestArticles(limit int) []*model.Article {
	if limit <= 0 {
		return []*model.Article{}
	}

	out := s.selectArticles(nil)
	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// ArticlesByCategory returns the category's articles, most recent first.
func (s *Store) ArticlesByCategory(categoryID int) []*model.Article {
	return s.selectArticles(func(a *model.Article) bool { return a.CategoryID == categoryID })
}

// ArticlesByCategorySlug resolves the slug and delegates to
// ArticlesByCategory. An unknown slug yields an empty slice, not an error.
func (s *Store) ArticlesByCategorySlug(slug string) []*model.Article {
	category, err := s.CategoryBySlug(slug)
	if err != nil {
		return []*model.Article{}
	}

	return s.ArticlesByCategory(category.ID)
}

// SearchArticles returns articles whose title, content or excerpt contains
// the query as a case-folded substring, most recent first. An empty or
// whitespace-only query short-circuits to an empty slice without scanning.
func (s *Store) SearchArticles(query string) []*model.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*model.Article{}
	}

	return s.selectArticles(func(a *model.Article) bool {
		return strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) ||
			strings.Contains(strings.ToLower(a.Excerpt), q)
	})
}

// selectArticles copies the articles matching keep (all of them when keep is
// nil) and sorts the copy by recency. The snapshot is taken under the read
// lock; sorting happens on the copy, so the stored insertion order is never
// disturbed.
func (s *Store) selectArticles(keep func(*model.Article) bool) []*model.Article {
	s.mu.RLock()
	out := make([]*model.Article, 0, len(s.articles))
	for _, article := range s.articles {
		if keep == nil || keep(article) {
			out = append(out, article)
		}
	}
	s.mu.RUnlock()

	sortByRecency(out)

	return out
}

// sortByRecency orders most recent first. The stable sort over an
// insertion-ordered slice breaks publication-time ties by insertion order.
func sortByRecency(articles []*model.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

func (s *Store) categoryByIDLocked(id int) *model.Category {
	for _, category := range s.categories {
		if category.ID == id {
			return category
		}
	}

	return nil
}
