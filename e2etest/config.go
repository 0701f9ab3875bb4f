package e2etest

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/status-im/price-proxy/config"
)

const testConfigTemplate = `
server:
  port: 3000                # replaced through the PORT env var
  allowed_origins: ["*"]
  shutdown_timeout: 2s

cache:
  ttl: 60s

coingecko:
  request_timeout: 2s
  override_public_url: "%s"
  default_ids: [bitcoin, ethereum]

rate_limits:
  free:
    window: 1h
    max: 3
  pro:
    window: 1h
    max: 100
  enterprise:
    window: 1h
    max: 1000

rate_limit_scope: client
stats_interval: 100ms

logging:
  level: warn
`

// createTestConfig writes a config file pointing the upstream at mockURL and returns its path
func createTestConfig(mockURL string) (string, error) {
	tempDir, err := os.MkdirTemp("", "price-proxy-test")
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	content := fmt.Sprintf(testConfigTemplate, mockURL)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(mockURL string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.RemoveAll(filepath.Dir(configPath))
		return nil, "", err
	}

	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary directory with configuration
func cleanupTestConfig(configPath string) {
	os.RemoveAll(filepath.Dir(configPath))
}

// freePort asks the kernel for an unused TCP port
func freePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}
