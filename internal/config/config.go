package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var required = []string{
	"JWT_SECRET",
	"MONGO_URI",
	"MONGO_DB_NAME",
	"MYSQL_DSN",
}

// Load reads the env file named by START (.env by default) and fails
// fast when a required variable is missing. ADDR is optional.
func Load() {
	envFile := os.Getenv("START")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Fatalf("Env file not found")
	}

	for _, name := range required {
		if os.Getenv(name) == "" {
			log.Fatalf("%s is not set in environment", name)
		}
	}
}
