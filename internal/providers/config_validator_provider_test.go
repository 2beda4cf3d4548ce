package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"drd/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Engine: structures.EngineConfig{
			Timezone:            "Asia/Kolkata",
			RecentWindowMinutes: 120,
			SuppressionMinutes:  30,
			DefaultLimit:        3,
		},
		Catalog: structures.CatalogConfig{
			SnapshotPath:    "/var/lib/drd/catalog.zst",
			RefreshSchedule: "@every 5m",
			FetchTimeout:    5 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownTimezone(t *testing.T) {
	c := validConfig()
	c.Engine.Timezone = "Mars/Olympus"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_LimitOutOfRange(t *testing.T) {
	c := validConfig()
	c.Engine.DefaultLimit = 11
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
