package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type SystemConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type StorageConfig struct {
	// Engine selects the storage backend: "memory" (default) or "bolt".
	Engine   string `yaml:"engine" json:"engine"`
	BoltFile string `yaml:"bolt_file" json:"bolt_file"`
}

type RazorpayConfig struct {
	KeyID     string `yaml:"key_id" json:"key_id"`
	KeySecret string `yaml:"key_secret" json:"key_secret"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SystemConfig   `yaml:"system" json:"system"`
	Web      WebConfig      `yaml:"web" json:"web"`
	Storage  StorageConfig  `yaml:"storage" json:"storage"`
	Razorpay RazorpayConfig `yaml:"razorpay" json:"razorpay"`
	Logger   LoggerConfig   `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SystemConfig{
		Appid:    "coachdesk",
		Location: "Asia/Kolkata",
		Workdir:  "/var/coachdesk",
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 5000,
	},
	Storage: StorageConfig{
		Engine:   "memory",
		BoltFile: "coachdesk.db",
	},
	Razorpay: RazorpayConfig{
		KeyID:     "rzp_test_YOUR_KEY_ID",
		KeySecret: "YOUR_KEY_SECRET",
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/coachdesk/coachdesk.log",
	},
}

func setEnvStrValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

// LoadConfig reads the YAML config file when it exists, then applies
// COACHDESK_* environment overrides on top of the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				zap.S().Errorf("config file %s parse error: %v", cfile, err)
			}
		}
	}

	setEnvStrValue("COACHDESK_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvStrValue("COACHDESK_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvStrValue("COACHDESK_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("COACHDESK_WEB_PORT", &cfg.Web.Port)
	setEnvStrValue("COACHDESK_STORAGE_ENGINE", &cfg.Storage.Engine)
	setEnvStrValue("COACHDESK_STORAGE_BOLT_FILE", &cfg.Storage.BoltFile)
	setEnvStrValue("RAZORPAY_KEY_ID", &cfg.Razorpay.KeyID)
	setEnvStrValue("RAZORPAY_KEY_SECRET", &cfg.Razorpay.KeySecret)
	setEnvStrValue("RAZORPAY_BASE_URL", &cfg.Razorpay.BaseURL)
	setEnvStrValue("COACHDESK_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("COACHDESK_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvStrValue("COACHDESK_LOGGER_FILENAME", &cfg.Logger.Filename)

	return &cfg
}

// BoltPath resolves the bolt file under the workdir unless an absolute
// path was configured.
func (c *AppConfig) BoltPath() string {
	if filepath.IsAbs(c.Storage.BoltFile) {
		return c.Storage.BoltFile
	}
	return filepath.Join(c.System.Workdir, c.Storage.BoltFile)
}
