package admin

import (
	"log"
	"net/http"

	"shopkart/app/helpers"
	"shopkart/app/repositories"

	"github.com/unrolled/render"
)

type DashboardHandler struct {
	render      *render.Render
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	contactRepo repositories.ContactRepository
}

func NewDashboardHandler(r *render.Render, p repositories.ProductRepository, o repositories.OrderRepository, c repositories.ContactRepository) *DashboardHandler {
	return &DashboardHandler{
		render:      r,
		productRepo: p,
		orderRepo:   o,
		contactRepo: c,
	}
}

// Dashboard lists every product and every order, unfiltered.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		log.Printf("Admin Dashboard: error loading products: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	orders, err := h.orderRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Admin Dashboard: error loading orders: %v", err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Admin Dashboard",
		"Products": products,
		"Orders":   orders,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin_dashboard", data)
}

// Contacts lists contact messages newest first.
func (h *DashboardHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Admin Contacts: error loading messages: %v", err)
		http.Error(w, "Failed to load messages", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Contact Messages",
		"Messages": messages,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin_contacts", data)
}
