package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/gorilla/mux"
)

type WishlistHandler struct {
	wishlistRepo repositories.WishlistRepository
	sessionStore sessions.SessionStore
}

func NewWishlistHandler(w repositories.WishlistRepository, s sessions.SessionStore) *WishlistHandler {
	return &WishlistHandler{
		wishlistRepo: w,
		sessionStore: s,
	}
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Product Not Found", http.StatusNotFound)
		return
	}

	userID := h.sessionStore.GetUserID(r)
	if err := h.wishlistRepo.Add(r.Context(), userID, uint(productID)); err != nil {
		log.Printf("Wishlist Add: error for user %d product %d: %v", userID, productID, err)
		http.Redirect(w, r, "/dashboard?status=error&message="+url.QueryEscape("Could not add to wishlist."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard?status=success&message="+url.QueryEscape("Added to Wishlist!"), http.StatusSeeOther)
}

// Remove deletes the entry only when it belongs to the session user.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	userID := h.sessionStore.GetUserID(r)
	if err := h.wishlistRepo.Remove(r.Context(), uint(id), userID); err != nil {
		log.Printf("Wishlist Remove: error for user %d entry %d: %v", userID, id, err)
		http.Redirect(w, r, "/dashboard?status=error&message="+url.QueryEscape("Could not remove from wishlist."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard?status=success&message="+url.QueryEscape("Removed from Wishlist!"), http.StatusSeeOther)
}
