package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBPath      string
	Port        string
	SESSION_KEY string
	AppAuthKey  string
	AppEncKey   string
	APP_ENV     string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBPath:      os.Getenv("DB_PATH"),
		Port:        os.Getenv("APP_PORT"),
		SESSION_KEY: os.Getenv("SESSION_KEY"),
		AppAuthKey:  os.Getenv("APP_AUTH_KEY"),
		AppEncKey:   os.Getenv("APP_ENC_KEY"),
		APP_ENV:     os.Getenv("APP_ENV"),
	}

	if env.DBPath == "" {
		env.DBPath = "database.db"
	}
	if env.Port == "" {
		env.Port = ":8080"
	}
	if env.SESSION_KEY == "" {
		env.SESSION_KEY = "shopkart-session-key"
	}

	return env
}
