package helpers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID   contextKey = "userID"
	ContextKeyUserName contextKey = "userName"
	ContextKeyAdmin    contextKey = "admin"
	CartCountKey       contextKey = "cart_count"
)

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "ShopKart"
	}
	if _, exists := pageSpecificData["CartCount"]; !exists {
		pageSpecificData["CartCount"] = 0
	}
	if _, exists := pageSpecificData["IsLoggedIn"]; !exists {
		pageSpecificData["IsLoggedIn"] = false
	}
	if _, exists := pageSpecificData["UserName"]; !exists {
		pageSpecificData["UserName"] = ""
	}
	if _, exists := pageSpecificData["IsAdmin"]; !exists {
		pageSpecificData["IsAdmin"] = false
	}

	if cartCountVal := r.Context().Value(CartCountKey); cartCountVal != nil {
		if count, ok := cartCountVal.(int); ok {
			pageSpecificData["CartCount"] = count
		} else {
			log.Printf("GetBaseData: CartCount in context is not of type int. Value: %+v", cartCountVal)
		}
	}

	if userIDVal := r.Context().Value(ContextKeyUserID); userIDVal != nil {
		if userID, ok := userIDVal.(uint); ok && userID != 0 {
			pageSpecificData["IsLoggedIn"] = true
			if name, ok := r.Context().Value(ContextKeyUserName).(string); ok {
				pageSpecificData["UserName"] = name
			}
		}
	}

	if adminVal := r.Context().Value(ContextKeyAdmin); adminVal != nil {
		if admin, ok := adminVal.(string); ok && admin != "" {
			pageSpecificData["IsAdmin"] = true
		}
	}

	// One-time notice carried across the redirect as query params.
	if status := r.URL.Query().Get("status"); status != "" {
		pageSpecificData["MessageStatus"] = status
	} else {
		pageSpecificData["MessageStatus"] = ""
	}
	if msg := r.URL.Query().Get("message"); msg != "" {
		pageSpecificData["Message"] = msg
	} else {
		pageSpecificData["Message"] = ""
	}

	pageSpecificData["csrfField"] = csrf.TemplateField(r)

	return pageSpecificData
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
