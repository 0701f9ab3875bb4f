package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/status-im/price-proxy/config"
	"github.com/status-im/price-proxy/core"
)

// TestEnv represents a test environment
type TestEnv struct {
	Registry      *core.Registry
	MockServer    *MockServer
	Config        *config.Config
	Context       context.Context
	CancelFunc    context.CancelFunc
	ConfigPath    string
	ServerBaseURL string
}

// SetupTest boots the full service against a mock upstream
func SetupTest(t *testing.T) *TestEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	mockServer := NewMockServer()

	port, err := freePort()
	require.NoError(t, err)
	t.Setenv("PORT", strconv.Itoa(port))

	cfg, configPath, err := loadTestConfig(mockServer.GetURL())
	if err != nil {
		mockServer.Close()
		cancel()
		t.Fatalf("Failed to load test config: %v", err)
	}

	env := &TestEnv{
		MockServer:    mockServer,
		Config:        cfg,
		Context:       ctx,
		CancelFunc:    cancel,
		ConfigPath:    configPath,
		ServerBaseURL: fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port),
	}

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		env.TearDown()
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		env.TearDown()
		t.Fatalf("Failed to start services: %v", err)
	}
	env.Registry = registry

	// Wait until the listener answers
	ready := false
	for i := 0; i < 50 && !ready; i++ {
		resp, err := http.Get(env.ServerBaseURL + "/health")
		if err == nil {
			resp.Body.Close()
			ready = resp.StatusCode == http.StatusOK
		}
		if !ready {
			time.Sleep(20 * time.Millisecond)
		}
	}
	if !ready {
		env.TearDown()
		t.Fatalf("Server not responding at %s", env.ServerBaseURL)
	}

	return env
}

// TearDown releases test environment resources
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
	}
	if env.MockServer != nil {
		env.MockServer.Close()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
	if env.ConfigPath != "" {
		cleanupTestConfig(env.ConfigPath)
	}
}
