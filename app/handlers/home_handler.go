package handlers

import (
	"net/http"

	"shopkart/app/helpers"
	"shopkart/app/repositories"

	"github.com/unrolled/render"
)

type HomeHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepository
}

func NewHomeHandler(r *render.Render, p repositories.ProductRepository) *HomeHandler {
	return &HomeHandler{
		render:      r,
		productRepo: p,
	}
}

// Home lists the catalog, filtered by a name substring and/or an exact
// category match taken from the query string.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	searchQuery := r.URL.Query().Get("search")
	categoryFilter := r.URL.Query().Get("category")

	categories, err := h.productRepo.GetCategories(r.Context())
	if err != nil {
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	products, err := h.productRepo.Search(r.Context(), searchQuery, categoryFilter)
	if err != nil {
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	pageSpecificData := map[string]interface{}{
		"Title":            "ShopKart",
		"Products":         products,
		"Categories":       categories,
		"SelectedCategory": categoryFilter,
		"SearchQuery":      searchQuery,
	}

	data := helpers.GetBaseData(r, pageSpecificData)
	_ = h.render.HTML(w, http.StatusOK, "index", data)
}

// Categories renders the full catalog grouped under the category navigation.
func (h *HomeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productRepo.GetCategories(r.Context())
	if err != nil {
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Categories",
		"Products":   products,
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "category", data)
}
