package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal; keys may come from the environment or config.yaml.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
