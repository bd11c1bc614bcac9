package main

import (
	"log"
	"net/http"
	"os"

	"shopkart/app/cmd"
	"shopkart/app/configs"
	"shopkart/app/db/seeders"
	"shopkart/app/models/migrations"
	"shopkart/app/routes"
	"shopkart/app/utils/renderer"
	"shopkart/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	if err := migrations.AutoMigrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	if err := seeders.EnsureDefaultAdmin(db); err != nil {
		log.Fatal("Admin seeding failed:", err)
	}

	sessionStore := sessions.NewCookieSessionStore([]byte(env.SESSION_KEY))
	rnd := renderer.New("templates")
	router := routes.NewRouter(db, env, rnd, sessionStore)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}
}
