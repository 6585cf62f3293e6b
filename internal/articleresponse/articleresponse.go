package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/habiutomo/portal-berita/internal/model"
)

// ArticleResponse is the response payload for the Article data model. The
// wire shape is the model itself; the embed leaves room for computed fields
// without touching the stored record.
type ArticleResponse struct {
	*model.Article
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func NewArticleListResponse(articles []*model.Article) []render.Renderer {
	list := []render.Renderer{}
	for _, article := range articles {
		list = append(list, NewArticleResponse(article))
	}

	return list
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
