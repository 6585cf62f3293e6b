package categoryresponse

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/habiutomo/portal-berita/internal/model"
)

// CategoryResponse is the response payload for the Category data model.
type CategoryResponse struct {
	*model.Category
}

func NewCategoryResponse(category *model.Category) *CategoryResponse {
	return &CategoryResponse{Category: category}
}

func NewCategoryListResponse(categories []*model.Category) []render.Renderer {
	list := []render.Renderer{}
	for _, category := range categories {
		list = append(list, NewCategoryResponse(category))
	}

	return list
}

func (rd *CategoryResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
