package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"shopkart/app/helpers"
	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepository
	sessionStore sessions.SessionStore
}

func NewCartHandler(r *render.Render, p repositories.ProductRepository, s sessions.SessionStore) *CartHandler {
	return &CartHandler{
		render:       r,
		productRepo:  p,
		sessionStore: s,
	}
}

// Add appends the product id to the session cart. Adding the same product
// twice means two units.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := cartProductID(r)
	if err != nil {
		http.Error(w, "Product Not Found", http.StatusNotFound)
		return
	}

	cart := h.sessionStore.GetCart(r)
	cart = append(cart, id)
	if err := h.sessionStore.SetCart(w, r, cart); err != nil {
		log.Printf("Add: error saving cart session: %v", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart?status=success&message="+url.QueryEscape("Item added to cart successfully!"), http.StatusSeeOther)
}

// Remove deletes the first occurrence of the product id from the cart.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := cartProductID(r)
	if err != nil {
		http.Error(w, "Product Not Found", http.StatusNotFound)
		return
	}

	cart := h.sessionStore.GetCart(r)
	for i, item := range cart {
		if item == id {
			cart = append(cart[:i], cart[i+1:]...)
			break
		}
	}
	if err := h.sessionStore.SetCart(w, r, cart); err != nil {
		log.Printf("Remove: error saving cart session: %v", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart?status=success&message="+url.QueryEscape("Item removed from cart."), http.StatusSeeOther)
}

// GetCart resolves the session cart against the catalog and renders the
// lines and total. Stale ids drop out silently.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ids := h.sessionStore.GetCart(r)

	cart, err := h.productRepo.ResolveCart(r.Context(), ids)
	if err != nil {
		log.Printf("GetCart: error resolving cart: %v", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Your Cart",
		"Cart":  cart,
		"Total": cart.Total,
	})
	_ = h.render.HTML(w, http.StatusOK, "cart", data)
}

func cartProductID(r *http.Request) (uint, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q: %w", idStr, err)
	}
	return uint(id), nil
}
