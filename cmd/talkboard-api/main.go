package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/talkboard-dev/talkboard/internal/config"
	"github.com/talkboard-dev/talkboard/internal/logger"
	"github.com/talkboard-dev/talkboard/internal/router"
	"github.com/talkboard-dev/talkboard/internal/setup"
)

func main() {
	configFolder := flag.String("config_folder", "./config", "folder with public.yaml and private.yaml")
	flag.Parse()

	cfg := config.MustLoad(*configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.Setup(cfg)
	if err != nil {
		logger.Log.Error("setup failed", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := router.New(deps.Handler, deps.AuthMiddleware, cfg)

	logger.Log.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
