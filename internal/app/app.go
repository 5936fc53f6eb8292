package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/coachdesk/coachdesk/config"
	"github.com/coachdesk/coachdesk/internal/storage"
)

type Application struct {
	appConfig *config.AppConfig
	store     storage.Storage
	bus       EventBus.Bus
	sched     *cronRunner
}

// Ensure Application implements all interfaces
var (
	_ StorageProvider = (*Application)(nil)
	_ ConfigProvider  = (*Application)(nil)
	_ BusProvider     = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() storage.Storage {
	return a.store
}

// OverrideStore replaces the application's storage engine (used in tests).
func (a *Application) OverrideStore(s storage.Storage) {
	a.store = s
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	if err := os.MkdirAll(cfg.System.Workdir, 0755); err != nil {
		zap.S().Warnf("workdir %s unavailable: %v", cfg.System.Workdir, err)
	}

	switch cfg.Storage.Engine {
	case "bolt":
		store, err := storage.OpenBoltStore(cfg.BoltPath())
		if err != nil {
			return err
		}
		a.store = store
		zap.S().Infof("storage engine: bolt (%s)", cfg.BoltPath())
	default:
		a.store = storage.NewMemoryStore()
		zap.S().Info("storage engine: memory (records do not survive restart)")
	}

	// Known gap carried over from the original system: nothing guards
	// the dashboard or export routes.
	zap.L().Warn("admin routes are unauthenticated", zap.String("prefix", "/api/admin"))

	a.bus = EventBus.New()
	a.subscribeActivityLog()

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.stop()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			zap.S().Errorf("storage close error: %v", err)
		}
	}
	_ = zap.L().Sync()
}
