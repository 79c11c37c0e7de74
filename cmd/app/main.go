package main

import (
	"log"

	"github.com/joho/godotenv"

	"invoice-ledger/internal/adapters/cli"
	"invoice-ledger/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cli.Execute(cfg)
}
