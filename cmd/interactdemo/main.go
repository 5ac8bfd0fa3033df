package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"proximity/internal/config"
	"proximity/internal/game"
)

func main() {
	configPath := flag.String("config", "assets/config/interact.yaml", "YAML config file, empty for defaults")
	scenePath := flag.String("scene", "", "scene file, overrides the config")
	watch := flag.Bool("watch", false, "reload scanner settings when the config file changes")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.Setup(cfg.Scene); err != nil {
		log.Fatal(err)
	}
	if *watch && *configPath != "" {
		if err := g.Watch(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	defer g.Close()

	g.Run()
}
