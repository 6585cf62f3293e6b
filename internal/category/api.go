package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/habiutomo/portal-berita/internal/articleresponse"
	"github.com/habiutomo/portal-berita/internal/categoryresponse"
	"github.com/habiutomo/portal-berita/internal/errresponse"
	"github.com/habiutomo/portal-berita/internal/model"
	"github.com/habiutomo/portal-berita/internal/store"
)

type ctxKey int

const categoryCtxKey ctxKey = iota

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

// Routes mounts the categories resource.
//
// The articles sub-route deliberately skips CategoryCtx: an unknown category
// slug there answers with an empty array, not a 404.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)                                             // GET /categories
	r.Get("/{categorySlug:[a-z0-9-]+}/articles", h.Articles)       // GET /categories/technology/articles
	r.With(h.CategoryCtx).Get("/{categorySlug:[a-z0-9-]+}", h.Get) // GET /categories/technology

	return r
}

// List returns all categories in insertion order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, categoryresponse.NewCategoryListResponse(h.store.Categories())); err != nil {
		h.renderErr(w, r, errresponse.ErrRender(err))
	}
}

// Get returns the category loaded onto the context by CategoryCtx.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	category := r.Context().Value(categoryCtxKey).(*model.Category)

	if err := render.Render(w, r, categoryresponse.NewCategoryResponse(category)); err != nil {
		h.renderErr(w, r, errresponse.ErrRender(err))
	}
}

// Articles returns the category's articles, most recent first. An
// unresolved slug yields an empty array.
func (h *Handler) Articles(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "categorySlug")
	articles := h.store.ArticlesByCategorySlug(slug)

	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		h.renderErr(w, r, errresponse.ErrRender(err))
	}
}

// CategoryCtx middleware loads the Category named by the categorySlug URL
// parameter onto the request context, or stops with a 404.
func (h *Handler) CategoryCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "categorySlug")
		if slug == "" {
			h.renderErr(w, r, errresponse.ErrNotFound)

			return
		}

		category, err := h.store.CategoryBySlug(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				h.renderErr(w, r, errresponse.ErrNotFound)

				return
			}

			h.sugarLogger.Errorw("category lookup failed", "slug", slug, "error", err)
			h.renderErr(w, r, errresponse.ErrInternal(err))

			return
		}

		ctx := context.WithValue(r.Context(), categoryCtxKey, category)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) renderErr(w http.ResponseWriter, r *http.Request, e render.Renderer) {
	if err := render.Render(w, r, e); err != nil {
		h.sugarLogger.Errorw(err.Error())
	}
}
