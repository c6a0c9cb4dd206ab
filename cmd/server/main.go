package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/seungyeonleeee/triply/internal/buildinfo"
	"github.com/seungyeonleeee/triply/internal/server"
	"github.com/seungyeonleeee/triply/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
