package middlewares

import (
	"context"
	"net/http"

	"shopkart/app/helpers"
	"shopkart/app/utils/sessions"
)

// SessionContextMiddleware lifts the session identity and cart count into the
// request context so templates can render the navbar without re-reading the
// cookie in every handler.
func SessionContextMiddleware(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := store.GetUserID(r); userID != 0 {
				ctx = context.WithValue(ctx, helpers.ContextKeyUserID, userID)
				ctx = context.WithValue(ctx, helpers.ContextKeyUserName, store.GetUserName(r))
			}
			if admin := store.GetAdmin(r); admin != "" {
				ctx = context.WithValue(ctx, helpers.ContextKeyAdmin, admin)
			}

			ctx = context.WithValue(ctx, helpers.CartCountKey, len(store.GetCart(r)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser gates routes on a logged-in end user.
func RequireUser(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.GetUserID(r) == 0 {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
