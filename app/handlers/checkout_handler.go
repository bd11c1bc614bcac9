package handlers

import (
	"log"
	"net/http"
	"net/url"

	"shopkart/app/helpers"
	"shopkart/app/models"
	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepository
	orderRepo    repositories.OrderRepository
	sessionStore sessions.SessionStore
}

func NewCheckoutHandler(r *render.Render, p repositories.ProductRepository, o repositories.OrderRepository, s sessions.SessionStore) *CheckoutHandler {
	return &CheckoutHandler{
		render:       r,
		productRepo:  p,
		orderRepo:    o,
		sessionStore: s,
	}
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	ids := h.sessionStore.GetCart(r)
	if len(ids) == 0 {
		h.redirectEmptyCart(w, r)
		return
	}

	cart, err := h.productRepo.ResolveCart(r.Context(), ids)
	if err != nil {
		log.Printf("Checkout Get: error resolving cart: %v", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Checkout",
		"Cart":  cart,
		"Total": cart.Total,
	})
	_ = h.render.HTML(w, http.StatusOK, "checkout", data)
}

// Post writes one order row from the submitted form and clears the cart.
// The total is recorded as submitted, not recomputed from the cart; the
// stored cart total only backs the checkout page itself.
func (h *CheckoutHandler) Post(w http.ResponseWriter, r *http.Request) {
	ids := h.sessionStore.GetCart(r)
	if len(ids) == 0 {
		h.redirectEmptyCart(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("Checkout Post: error parsing form: %v", err)
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Could not process your order."), http.StatusSeeOther)
		return
	}

	total, err := decimal.NewFromString(r.FormValue("total"))
	if err != nil {
		log.Printf("Checkout Post: invalid total %q: %v", r.FormValue("total"), err)
		total = decimal.Zero
	}

	order := models.Order{
		Name:          r.FormValue("name"),
		Email:         r.FormValue("email"),
		Address:       r.FormValue("address"),
		PaymentMethod: r.FormValue("payment_method"),
		Total:         total,
		Status:        models.OrderStatusPending,
	}

	if userID := h.sessionStore.GetUserID(r); userID != 0 {
		order.UserID = &userID
	}

	if err := h.orderRepo.Create(r.Context(), &order); err != nil {
		log.Printf("Checkout Post: error creating order: %v", err)
		http.Redirect(w, r, "/checkout?status=error&message="+url.QueryEscape("Could not place your order. Please try again."), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.ClearCart(w, r); err != nil {
		log.Printf("Checkout Post: error clearing cart after order %s: %v", order.Code, err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":     "Order Placed",
		"Name":      order.Name,
		"OrderCode": order.Code,
	})
	_ = h.render.HTML(w, http.StatusOK, "order_success", data)
}

func (h *CheckoutHandler) redirectEmptyCart(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Your cart is empty!"), http.StatusSeeOther)
}
