package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"shopkart/app/helpers"
	"shopkart/app/models"
	"shopkart/app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type ContactHandler struct {
	render      *render.Render
	contactRepo repositories.ContactRepository
	validator   *validator.Validate
}

func NewContactHandler(r *render.Render, c repositories.ContactRepository, v *validator.Validate) *ContactHandler {
	return &ContactHandler{
		render:      r,
		contactRepo: c,
		validator:   v,
	}
}

type ContactForm struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":   "Contact Us",
		"Name":    "",
		"Email":   "",
		"Content": "",
	})
	_ = h.render.HTML(w, http.StatusOK, "contact", data)
}

func (h *ContactHandler) Post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("Contact Post: error parsing form: %v", err)
		http.Redirect(w, r, "/contact?status=error&message="+url.QueryEscape("Could not process the form."), http.StatusSeeOther)
		return
	}

	form := ContactForm{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}

	if err := h.validator.Struct(form); err != nil {
		errs := helpers.FormatValidationErrors(err.(validator.ValidationErrors))
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":   "Contact Us",
			"Errors":  errs,
			"Name":    form.Name,
			"Email":   form.Email,
			"Content": form.Message,
		})
		_ = h.render.HTML(w, http.StatusOK, "contact", data)
		return
	}

	message := models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if err := h.contactRepo.Create(r.Context(), &message); err != nil {
		log.Printf("Contact Post: error saving message from %s: %v", form.Email, err)
		http.Redirect(w, r, "/contact?status=error&message="+url.QueryEscape("Could not send your message. Please try again."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/contact?status=success&message="+url.QueryEscape("Message sent successfully! Thank you for contacting us."), http.StatusSeeOther)
}
