package article

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/habiutomo/portal-berita/internal/articleresponse"
	"github.com/habiutomo/portal-berita/internal/errresponse"
	"github.com/habiutomo/portal-berita/internal/model"
	"github.com/habiutomo/portal-berita/internal/store"
)

// defaultLatestLimit is used when the limit query param is absent,
// non-numeric or non-positive.
const defaultLatestLimit = 10

type Handler struct {
	store       *store.Store
	sugarLogger *zap.SugaredLogger
}

func NewHandler(s *store.Store, sugarLogger *zap.SugaredLogger) *Handler {
	return &Handler{
		store:       s,
		sugarLogger: sugarLogger,
	}
}

// Routes mounts the articles resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)                      // GET /articles
	r.Get("/featured", h.Featured)          // GET /articles/featured
	r.Get("/trending", h.Trending)          // GET /articles/trending
	r.Get("/editors-picks", h.EditorsPicks) // GET /articles/editors-picks
	r.Get("/latest", h.Latest)              // GET /articles/latest?limit=n

	// GET /articles/global-climate-summit-agreement
	r.With(h.ArticleCtx).Get("/{articleSlug:[a-z0-9-]+}", h.Get)

	return r
}

// List returns all articles in the store's natural order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, h.store.Articles())
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, h.store.FeaturedArticles())
}

func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, h.store.TrendingArticles())
}

func (h *Handler) EditorsPicks(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, h.store.EditorsPickArticles())
}

// Latest returns the most recent articles, truncated to the limit query
// param (default 10).
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultLatestLimit)
	h.renderList(w, r, h.store.LatestArticles(limit))
}

// Get returns the article loaded onto the context by ArticleCtx. If we made
// it this far the article must be there; a bug here panics and the Recoverer
// middleware turns it into a 500.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	article := r.Context().Value(articleCtxKey).(*model.Article)

	if err := render.Render(w, r, articleresponse.NewArticleResponse(article)); err != nil {
		h.renderErr(w, r, errresponse.ErrRender(err))
	}
}

// Search matches the query case-insensitively against article titles,
// content and excerpts. An absent or blank q yields an empty array, not an
// error; "nothing matched" and "bad request" are distinct outcomes.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		h.renderList(w, r, nil)

		return
	}

	h.renderList(w, r, h.store.SearchArticles(q))
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, articles []*model.Article) {
	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		h.renderErr(w, r, errresponse.ErrRender(err))
	}
}

func (h *Handler) renderErr(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		h.sugarLogger.Errorw(err.Error())
	}
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}

	return parsed
}
