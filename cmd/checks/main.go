package main

import (
	"inputguard/internal/checks/handler"
	"inputguard/internal/checks/service"
	"inputguard/internal/checks/validator"
	"inputguard/pkg/app"
	"inputguard/pkg/config"
)

const ServiceName = "checks"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Checks service")
	checkService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Log),
		handler.NewCheckHandler(checkService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.CheckService {
	checker, err := cfg.Checker()
	if err != nil {
		cfg.Log.Fatal("Failed to build checker", "error", err)
	}

	checkService := service.NewCheckService(
		checker,
		validator.NewRequestValidator(cfg.Log),
		cfg,
	)

	cfg.Log.Info("Checks service initialized", "id_codec", checker.Codec().Name())
	return checkService
}
