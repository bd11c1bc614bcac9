package handlers

import (
	"log"
	"net/http"

	"shopkart/app/helpers"
	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/unrolled/render"
)

type DashboardHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepository
	orderRepo    repositories.OrderRepository
	wishlistRepo repositories.WishlistRepository
	sessionStore sessions.SessionStore
}

func NewDashboardHandler(r *render.Render, u repositories.UserRepository, o repositories.OrderRepository, w repositories.WishlistRepository, s sessions.SessionStore) *DashboardHandler {
	return &DashboardHandler{
		render:       r,
		userRepo:     u,
		orderRepo:    o,
		wishlistRepo: w,
		sessionStore: s,
	}
}

// Dashboard shows the logged-in user's profile, orders and wishlist.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := h.sessionStore.GetUserID(r)

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("Dashboard: error loading user %d: %v", userID, err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	orders, err := h.orderRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Dashboard: error loading orders for user %d: %v", userID, err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	wishlist, err := h.wishlistRepo.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Dashboard: error loading wishlist for user %d: %v", userID, err)
		http.Error(w, "Failed to load wishlist", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Dashboard",
		"User":     user,
		"Orders":   orders,
		"Wishlist": wishlist,
	})
	_ = h.render.HTML(w, http.StatusOK, "dashboard", data)
}
