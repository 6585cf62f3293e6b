package article

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/habiutomo/portal-berita/internal/errresponse"
	"github.com/habiutomo/portal-berita/internal/store"
)

type ctxKey int

const articleCtxKey ctxKey = iota

// ArticleCtx middleware loads the Article named by the articleSlug URL
// parameter onto the request context. In case the Article could not be
// found, we stop here and return a 404.
func (h *Handler) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "articleSlug")
		if slug == "" {
			h.renderErr(w, r, errresponse.ErrNotFound)

			return
		}

		article, err := h.store.ArticleBySlug(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				h.renderErr(w, r, errresponse.ErrNotFound)

				return
			}

			h.sugarLogger.Errorw("article lookup failed", "slug", slug, "error", err)
			h.renderErr(w, r, errresponse.ErrInternal(err))

			return
		}

		ctx := context.WithValue(r.Context(), articleCtxKey, article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
