package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"shopkart/app/utils/sessions"
)

// RequireAdmin gates the admin views on the admin session flag.
func RequireAdmin(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.GetAdmin(r) == "" {
				log.Printf("RequireAdmin: no admin session for %s. Redirecting to admin login.", r.URL.Path)
				http.Redirect(w, r, "/admin_login?status=error&message="+url.QueryEscape("Please login as admin to access this page."), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
