package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/streetbazaar/storefront/internal/session"
	"github.com/streetbazaar/storefront/internal/shell"
	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/global"
)

func main() {

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	tokenPath := os.Getenv("STREETBAZAAR_TOKEN_FILE")
	if tokenPath == "" {
		var err error
		tokenPath, err = session.DefaultTokenPath()
		if err != nil {
			log.Fatalf("Failed to resolve token path: %v", err)
		}
	}

	client := api.New(global.GetAPIBaseURL())
	sess := session.New(client, session.NewFileTokenStore(tokenPath))

	app := shell.New(client, sess, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Shell exited with error: %v", err)
	}
}
