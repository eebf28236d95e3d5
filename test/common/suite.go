package common

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"inputguard/internal/checks/handler"
	"inputguard/internal/checks/service"
	"inputguard/internal/checks/validator"
	"inputguard/pkg/app"
	"inputguard/pkg/client"
	"inputguard/pkg/config"
	"inputguard/pkg/logger"
)

type IntegrationTestSuite struct {
	Config      *config.Config
	Client      *client.CheckClient
	ServiceName string
}

// NewIntegrationTestSuite targets TEST_SERVER_URL when set and otherwise
// serves the full application stack in-process.
func NewIntegrationTestSuite(t *testing.T, serviceName string) *IntegrationTestSuite {
	t.Helper()

	cfg := config.FromEnv()
	cfg.Log = logger.Discard()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		checker, err := cfg.Checker()
		if err != nil {
			t.Fatalf("failed to build checker: %v", err)
		}
		svc := service.NewCheckService(checker, validator.NewRequestValidator(cfg.Log), cfg)

		a := app.NewApplication(cfg)
		a.SetApp(handler.NewHealthHandler(cfg.Log), handler.NewCheckHandler(svc, cfg.Log))

		server := httptest.NewServer(a.Handler())
		t.Cleanup(server.Close)
		serverURL = server.URL
	}

	c := client.NewCheckClient(serverURL)
	if err := c.HTTP().WaitForHealthy(context.Background(), 10*time.Second); err != nil {
		t.Fatalf("service at %s is not healthy: %v", serverURL, err)
	}

	return &IntegrationTestSuite{
		Config:      cfg,
		Client:      c,
		ServiceName: serviceName,
	}
}
