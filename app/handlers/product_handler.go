package handlers

import (
	"log"
	"net/http"
	"strconv"

	"shopkart/app/helpers"
	"shopkart/app/repositories"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const relatedProductsLimit = 4

type ProductHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepository
}

func NewProductHandler(r *render.Render, p repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{
		render:      r,
		productRepo: p,
	}
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Product Not Found", http.StatusNotFound)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), uint(id))
	if err != nil {
		log.Printf("Detail: error loading product %d: %v", id, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Product Not Found", http.StatusNotFound)
		return
	}

	related, err := h.productRepo.GetRelated(r.Context(), product.Category, product.ID, relatedProductsLimit)
	if err != nil {
		log.Printf("Detail: error loading related products for %d: %v", id, err)
		related = nil
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           product.Name,
		"Product":         product,
		"RelatedProducts": related,
	})
	_ = h.render.HTML(w, http.StatusOK, "product", data)
}
