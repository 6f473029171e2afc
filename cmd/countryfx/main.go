package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fxatlas/countryfx/pkg/app"
	"github.com/fxatlas/countryfx/pkg/app/api"
	"github.com/fxatlas/countryfx/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (empty boots from defaults and environment)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Server exited with error: %v\n", err)
		os.Exit(1)
	}
}
