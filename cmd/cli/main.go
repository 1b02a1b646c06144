package main

import (
	"context"
	"log"
	"os"

	"github.com/evlasova/moodkeeper/internal/buildinfo"
	"github.com/evlasova/moodkeeper/internal/cli"
	"github.com/evlasova/moodkeeper/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		// a store that cannot be opened means the install is broken;
		// fail fast instead of limping along without persistence
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
