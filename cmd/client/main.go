package main

import (
	"context"
	"log"
	"os"

	"github.com/seungyeonleeee/triply/internal/buildinfo"
	"github.com/seungyeonleeee/triply/internal/client/cli"
	"github.com/seungyeonleeee/triply/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
