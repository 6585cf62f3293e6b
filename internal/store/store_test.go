package store

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/habiutomo/portal-berita/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedClock() (func() time.Time, time.Time) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	return func() time.Time { return now }, now
}

func newTestStore(t *testing.T) (*Store, time.Time) {
	t.Helper()

	clock, now := fixedClock()

	return New(WithClock(clock)), now
}

func mustCategory(t *testing.T, s *Store, name, slug string) *model.Category {
	t.Helper()

	category, err := s.CreateCategory(InsertCategory{Name: name, Slug: slug})
	if err != nil {
		t.Fatalf("CreateCategory(%q): %v", slug, err)
	}

	return category
}

func mustArticle(t *testing.T, s *Store, ins InsertArticle) *model.Article {
	t.Helper()

	if ins.Title == "" {
		ins.Title = "Title " + ins.Slug
	}
	if ins.Content == "" {
		ins.Content = "<p>content</p>"
	}
	if ins.Excerpt == "" {
		ins.Excerpt = "excerpt"
	}

	article, err := s.CreateArticle(ins)
	if err != nil {
		t.Fatalf("CreateArticle(%q): %v", ins.Slug, err)
	}

	return article
}

func slugsOf(articles []*model.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Slug)
	}

	return out
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s, now := newTestStore(t)

	first := mustCategory(t, s, "Tech", "tech")
	second := mustCategory(t, s, "Science", "science")

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("category ids = %d, %d; want 1, 2", first.ID, second.ID)
	}

	a1 := mustArticle(t, s, InsertArticle{Slug: "one", CategoryID: first.ID, PublishedAt: now})
	a2 := mustArticle(t, s, InsertArticle{Slug: "two", CategoryID: second.ID, PublishedAt: now})

	if a1.ID != 1 || a2.ID != 2 {
		t.Fatalf("article ids = %d, %d; want 1, 2", a1.ID, a2.ID)
	}
}

func TestCreateArticleUnknownCategory(t *testing.T) {
	s, now := newTestStore(t)

	_, err := s.CreateArticle(InsertArticle{
		Title:       "Dangling",
		Slug:        "dangling",
		Content:     "<p>x</p>",
		Excerpt:     "x",
		CategoryID:  42,
		PublishedAt: now,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("CreateArticle with unknown category: err = %v; want ErrValidation", err)
	}

	if got := len(s.Articles()); got != 0 {
		t.Fatalf("dangling article was stored; len(Articles()) = %d", got)
	}
}

func TestCreateArticleDefaults(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	article := mustArticle(t, s, InsertArticle{Slug: "defaults", CategoryID: category.ID})

	if !article.PublishedAt.Equal(now) {
		t.Errorf("zero PublishedAt = %v; want clock now %v", article.PublishedAt, now)
	}
	if article.Featured || article.Trending || article.EditorsPick {
		t.Errorf("flags default true: featured=%v trending=%v editorsPick=%v",
			article.Featured, article.Trending, article.EditorsPick)
	}
}

func TestCreateArticleNormalizesToUTC(t *testing.T) {
	s, _ := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	loc := time.FixedZone("UTC+7", 7*60*60)
	local := time.Date(2024, time.May, 10, 19, 0, 0, 0, loc)

	article := mustArticle(t, s, InsertArticle{Slug: "tz", CategoryID: category.ID, PublishedAt: local})

	if article.PublishedAt.Location() != time.UTC {
		t.Errorf("PublishedAt location = %v; want UTC", article.PublishedAt.Location())
	}
	if !article.PublishedAt.Equal(local) {
		t.Errorf("PublishedAt = %v; want same instant as %v", article.PublishedAt, local)
	}
}

func TestLookupNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.ArticleBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ArticleBySlug: err = %v; want ErrNotFound", err)
	}
	if _, err := s.ArticleByID(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("ArticleByID: err = %v; want ErrNotFound", err)
	}
	if _, err := s.CategoryBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("CategoryBySlug: err = %v; want ErrNotFound", err)
	}
	if _, err := s.CategoryByID(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("CategoryByID: err = %v; want ErrNotFound", err)
	}
}

func TestCategorySlugCollisionFirstWins(t *testing.T) {
	s, _ := newTestStore(t)

	first := mustCategory(t, s, "Tech", "tech")
	second := mustCategory(t, s, "Tech again", "tech")

	got, err := s.CategoryBySlug("tech")
	if err != nil {
		t.Fatalf("CategoryBySlug: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("CategoryBySlug resolved id %d; want first-created %d (not %d)", got.ID, first.ID, second.ID)
	}

	// Both records stay reachable by id.
	if _, err := s.CategoryByID(second.ID); err != nil {
		t.Errorf("CategoryByID(%d): %v", second.ID, err)
	}
}

func TestRecencyTiesPreserveInsertionOrder(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	for _, slug := range []string{"first", "second", "third"} {
		mustArticle(t, s, InsertArticle{Slug: slug, CategoryID: category.ID, PublishedAt: now})
	}

	got := slugsOf(s.LatestArticles(10))
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("LatestArticles returned %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tied timestamps reordered: got %v, want %v", got, want)
		}
	}
}

func TestLatestArticlesLimit(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	for i, slug := range []string{"a", "b", "c", "d"} {
		mustArticle(t, s, InsertArticle{
			Slug:        slug,
			CategoryID:  category.ID,
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	if got := s.LatestArticles(0); len(got) != 0 {
		t.Errorf("LatestArticles(0) returned %d items; want 0", len(got))
	}
	if got := s.LatestArticles(-5); len(got) != 0 {
		t.Errorf("LatestArticles(-5) returned %d items; want 0", len(got))
	}
	if got := s.LatestArticles(2); len(got) != 2 {
		t.Errorf("LatestArticles(2) returned %d items; want 2", len(got))
	}
	if got := s.LatestArticles(100); len(got) != 4 {
		t.Errorf("LatestArticles(100) returned %d items; want all 4", len(got))
	}
}

func TestLatestArticlesPrefixProperty(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	for i := 0; i < 6; i++ {
		mustArticle(t, s, InsertArticle{
			Slug:        "article-" + string(rune('a'+i)),
			CategoryID:  category.ID,
			PublishedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	for n := 1; n < 6; n++ {
		shorter := slugsOf(s.LatestArticles(n))
		longer := slugsOf(s.LatestArticles(n + 1))
		for i := range shorter {
			if shorter[i] != longer[i] {
				t.Fatalf("LatestArticles(%d) is not a prefix of LatestArticles(%d): %v vs %v",
					n, n+1, shorter, longer)
			}
		}
	}
}

func TestFlagFiltersMembership(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	mustArticle(t, s, InsertArticle{Slug: "plain", CategoryID: category.ID, PublishedAt: now})
	mustArticle(t, s, InsertArticle{Slug: "hot", CategoryID: category.ID, PublishedAt: now, Featured: true, Trending: true})
	mustArticle(t, s, InsertArticle{Slug: "pick", CategoryID: category.ID, PublishedAt: now, EditorsPick: true})

	featured := s.FeaturedArticles()
	for _, a := range featured {
		if !a.Featured {
			t.Errorf("FeaturedArticles returned non-featured %q", a.Slug)
		}
	}

	seen := map[string]int{}
	for _, a := range featured {
		seen[a.Slug]++
	}
	for _, a := range s.Articles() {
		if a.Featured && seen[a.Slug] != 1 {
			t.Errorf("featured article %q appears %d times in FeaturedArticles; want exactly once", a.Slug, seen[a.Slug])
		}
	}

	if got := slugsOf(s.TrendingArticles()); len(got) != 1 || got[0] != "hot" {
		t.Errorf("TrendingArticles = %v; want [hot]", got)
	}
	if got := slugsOf(s.EditorsPickArticles()); len(got) != 1 || got[0] != "pick" {
		t.Errorf("EditorsPickArticles = %v; want [pick]", got)
	}
}

func TestArticlesByCategorySlugUnknown(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.ArticlesByCategorySlug("no-such-category")
	if got == nil || len(got) != 0 {
		t.Fatalf("ArticlesByCategorySlug(unknown) = %v; want empty non-nil slice", got)
	}
}

func TestSearchArticlesEmptyQuery(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")
	mustArticle(t, s, InsertArticle{Slug: "any", CategoryID: category.ID, PublishedAt: now})

	for _, q := range []string{"", "   ", "\t\n"} {
		if got := s.SearchArticles(q); len(got) != 0 {
			t.Errorf("SearchArticles(%q) returned %d items; want 0", q, len(got))
		}
	}
}

func TestSearchArticlesCaseFolding(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	mustArticle(t, s, InsertArticle{
		Title:       "Quantum Leap in Computing",
		Slug:        "quantum-leap",
		Content:     "<p>A detailed look at QUBITS and error correction.</p>",
		Excerpt:     "Researchers demonstrate a new milestone.",
		CategoryID:  category.ID,
		PublishedAt: now,
	})

	for _, q := range []string{"quantum", "QUANTUM", "qubits", "Milestone"} {
		if got := s.SearchArticles(q); len(got) != 1 {
			t.Errorf("SearchArticles(%q) returned %d items; want 1", q, len(got))
		}
	}

	if got := s.SearchArticles("nonexistent-term"); len(got) != 0 {
		t.Errorf("SearchArticles(no match) returned %d items; want 0", len(got))
	}
}

func TestArticlesReturnsInsertionOrder(t *testing.T) {
	s, now := newTestStore(t)
	category := mustCategory(t, s, "Tech", "tech")

	// Newest inserted first: natural order must not be recency order.
	mustArticle(t, s, InsertArticle{Slug: "newest", CategoryID: category.ID, PublishedAt: now})
	mustArticle(t, s, InsertArticle{Slug: "oldest", CategoryID: category.ID, PublishedAt: now.Add(-time.Hour)})

	got := slugsOf(s.Articles())
	if got[0] != "newest" || got[1] != "oldest" {
		t.Fatalf("Articles() = %v; want insertion order [newest oldest]", got)
	}
}
