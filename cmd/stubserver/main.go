package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/luca/internal/buildinfo"
	"github.com/dmitrijs2005/luca/internal/stubserver"
	"github.com/dmitrijs2005/luca/internal/stubserver/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app := stubserver.NewApp(cfg)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
