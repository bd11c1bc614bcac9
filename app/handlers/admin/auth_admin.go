package admin

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"shopkart/app/helpers"
	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/unrolled/render"
)

type AuthAdminHandler struct {
	render       *render.Render
	adminRepo    repositories.AdminRepository
	sessionStore sessions.SessionStore
}

func NewAuthAdminHandler(r *render.Render, a repositories.AdminRepository, s sessions.SessionStore) *AuthAdminHandler {
	return &AuthAdminHandler{
		render:       r,
		adminRepo:    a,
		sessionStore: s,
	}
}

func (h *AuthAdminHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if admin := h.sessionStore.GetAdmin(r); admin != "" {
		http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Admin Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "admin_login", data)
}

func (h *AuthAdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("Admin LoginPost: error parsing form: %v", err)
		http.Redirect(w, r, "/admin_login?status=error&message="+url.QueryEscape("Could not process the form."), http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	admin, err := h.adminRepo.FindByUsername(r.Context(), username)
	if err != nil {
		log.Printf("Admin LoginPost: error getting admin '%s': %v", username, err)
		http.Redirect(w, r, "/admin_login?status=error&message="+url.QueryEscape("Something went wrong. Please try again."), http.StatusSeeOther)
		return
	}
	if admin == nil || !helpers.PasswordCompare(admin.Password, []byte(password)) {
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title": "Admin Login",
			"Error": "Invalid Credentials",
		})
		_ = h.render.HTML(w, http.StatusOK, "admin_login", data)
		return
	}

	if err := h.sessionStore.SetAdmin(w, r, admin.Username); err != nil {
		log.Printf("Admin LoginPost: error setting admin session: %v", err)
		http.Redirect(w, r, "/admin_login?status=error&message="+url.QueryEscape("Failed to create admin session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
}

func (h *AuthAdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearAdmin(w, r); err != nil {
		log.Printf("Admin Logout: error clearing admin session: %v", err)
	}
	http.Redirect(w, r, "/admin_login?status=success&message="+url.QueryEscape("Logged out."), http.StatusSeeOther)
}
