package config

import (
	"log"
	"os"

	// Loads .env into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port     string
	MongoURI string
	DBName   string
	LogFile  string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "pawmart"
	}
	logFile := os.Getenv("LOG_FILE") // optional file sink, empty disables

	cfg := Config{Port: port, MongoURI: uri, DBName: dbName, LogFile: logFile}
	log.Printf("[config] PORT=%s MONGODB_DB=%s LOG_FILE=%s", cfg.Port, cfg.DBName, cfg.LogFile)
	return cfg
}
