package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"shopkart/app/helpers"
	"shopkart/app/models"
	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepository
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepository, sessionStore sessions.SessionStore, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    validator,
	}
}

type SignupForm struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=4"`
}

func (h *AuthHandler) SignupGet(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Sign Up",
		"Name":  "",
		"Email": "",
	})
	_ = h.render.HTML(w, http.StatusOK, "signup", data)
}

func (h *AuthHandler) SignupPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("SignupPost: error parsing form: %v", err)
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Could not process the form."), http.StatusSeeOther)
		return
	}

	form := SignupForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	if err := h.validator.Struct(form); err != nil {
		errs := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":  "Sign Up",
			"Errors": errs,
			"Name":   form.Name,
			"Email":  form.Email,
		})
		_ = h.render.HTML(w, http.StatusOK, "signup", data)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("SignupPost: error checking email %s: %v", form.Email, err)
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Something went wrong. Please try again."), http.StatusSeeOther)
		return
	}
	if existing != nil {
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Email already registered!"), http.StatusSeeOther)
		return
	}

	user := models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	}
	if err := h.userRepo.Create(r.Context(), &user); err != nil {
		// Unique index on email catches the race the pre-check missed.
		log.Printf("SignupPost: error creating user %s: %v", form.Email, err)
		http.Redirect(w, r, "/signup?status=error&message="+url.QueryEscape("Email already registered!"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/login?status=success&message="+url.QueryEscape("Account created! Please login."), http.StatusSeeOther)
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if userID := h.sessionStore.GetUserID(r); userID != 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPost: error parsing form: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Could not process the form."), http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("LoginPost: error getting user by email '%s': %v", email, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Something went wrong. Please try again."), http.StatusSeeOther)
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(password)) {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Invalid credentials!"), http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUser(w, r, user.ID, user.Name); err != nil {
		log.Printf("LoginPost: error setting user session: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Failed to create login session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard?status=success&message="+url.QueryEscape("Welcome, "+user.Name+"!"), http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearUser(w, r); err != nil {
		log.Printf("Logout: error clearing user session: %v", err)
	}
	http.Redirect(w, r, "/?status=success&message="+url.QueryEscape("You've logged out successfully!"), http.StatusSeeOther)
}
