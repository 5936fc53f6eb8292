package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	assert.Equal(t, "coachdesk", cfg.System.Appid)
	assert.Equal(t, "memory", cfg.Storage.Engine)
	assert.Equal(t, 5000, cfg.Web.Port)
	assert.Equal(t, "development", cfg.Logger.Mode)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "coachdesk.yml")
	content := []byte(`
web:
  host: 127.0.0.1
  port: 8080
storage:
  engine: bolt
  bolt_file: leads.db
`)
	require.NoError(t, os.WriteFile(cfile, content, 0600))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, "bolt", cfg.Storage.Engine)
	assert.Equal(t, "leads.db", cfg.Storage.BoltFile)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("COACHDESK_WEB_PORT", "9999")
	t.Setenv("COACHDESK_STORAGE_ENGINE", "bolt")
	t.Setenv("RAZORPAY_KEY_SECRET", "supersecret")

	cfg := LoadConfig("")
	assert.Equal(t, 9999, cfg.Web.Port)
	assert.Equal(t, "bolt", cfg.Storage.Engine)
	assert.Equal(t, "supersecret", cfg.Razorpay.KeySecret)
}

func TestBoltPath(t *testing.T) {
	cfg := LoadConfig("")
	cfg.System.Workdir = "/var/coachdesk"
	cfg.Storage.BoltFile = "leads.db"
	assert.Equal(t, "/var/coachdesk/leads.db", cfg.BoltPath())

	cfg.Storage.BoltFile = "/data/leads.db"
	assert.Equal(t, "/data/leads.db", cfg.BoltPath())
}
