package routes

import (
	"net/http"

	"shopkart/app/configs"
	"shopkart/app/handlers"
	adminhandlers "shopkart/app/handlers/admin"
	"shopkart/app/middlewares"
	"shopkart/app/repositories"
	"shopkart/app/utils/sessions"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, rnd *render.Render, sessionStore sessions.SessionStore) http.Handler {
	router := mux.NewRouter()

	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	homeHandler := handlers.NewHomeHandler(rnd, productRepo)
	productHandler := handlers.NewProductHandler(rnd, productRepo)
	cartHandler := handlers.NewCartHandler(rnd, productRepo, sessionStore)
	checkoutHandler := handlers.NewCheckoutHandler(rnd, productRepo, orderRepo, sessionStore)
	authHandler := handlers.NewAuthHandler(rnd, userRepo, sessionStore, validate)
	dashboardHandler := handlers.NewDashboardHandler(rnd, userRepo, orderRepo, wishlistRepo, sessionStore)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo, sessionStore)
	contactHandler := handlers.NewContactHandler(rnd, contactRepo, validate)
	adminAuthHandler := adminhandlers.NewAuthAdminHandler(rnd, adminRepo, sessionStore)
	adminDashboardHandler := adminhandlers.NewDashboardHandler(rnd, productRepo, orderRepo, contactRepo)

	router.Use(middlewares.SessionContextMiddleware(sessionStore))

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/product/{id:[0-9]+}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/category", homeHandler.Categories).Methods("GET")

	router.HandleFunc("/add_to_cart/{id:[0-9]+}", cartHandler.Add).Methods("GET", "POST")
	router.HandleFunc("/remove_from_cart/{id:[0-9]+}", cartHandler.Remove).Methods("GET")
	router.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")

	router.HandleFunc("/checkout", checkoutHandler.Get).Methods("GET")
	router.HandleFunc("/checkout", checkoutHandler.Post).Methods("POST")

	router.HandleFunc("/signup", authHandler.SignupGet).Methods("GET")
	router.HandleFunc("/signup", authHandler.SignupPost).Methods("POST")
	router.HandleFunc("/login", authHandler.LoginGet).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/user_logout", authHandler.Logout).Methods("GET")
	router.HandleFunc("/logout_user", authHandler.Logout).Methods("GET")

	router.HandleFunc("/contact", contactHandler.Get).Methods("GET")
	router.HandleFunc("/contact", contactHandler.Post).Methods("POST")

	requireUser := middlewares.RequireUser(sessionStore)
	userRouter := router.NewRoute().Subrouter()
	userRouter.Use(requireUser)
	userRouter.HandleFunc("/dashboard", dashboardHandler.Dashboard).Methods("GET")
	userRouter.HandleFunc("/add_to_wishlist/{id:[0-9]+}", wishlistHandler.Add).Methods("GET")
	userRouter.HandleFunc("/remove_wishlist/{id:[0-9]+}", wishlistHandler.Remove).Methods("GET")

	router.HandleFunc("/admin_login", adminAuthHandler.LoginGet).Methods("GET")
	router.HandleFunc("/admin_login", adminAuthHandler.LoginPost).Methods("POST")
	router.HandleFunc("/admin_logout", adminAuthHandler.Logout).Methods("GET")

	requireAdmin := middlewares.RequireAdmin(sessionStore)
	adminRouter := router.NewRoute().Subrouter()
	adminRouter.Use(requireAdmin)
	adminRouter.HandleFunc("/admin_dashboard", adminDashboardHandler.Dashboard).Methods("GET")
	adminRouter.HandleFunc("/admin_contacts", adminDashboardHandler.Contacts).Methods("GET")

	if keys, err := configs.LoadSessionKeysFromEnv(env); err == nil {
		protect := csrf.Protect(keys.AuthKey,
			csrf.Secure(env.APP_ENV == "production"),
			csrf.Path("/"),
		)
		return protect(router)
	}

	return router
}
