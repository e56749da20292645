package cfg

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/sneakers-store/pkg/e"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Log  *LogCfg
	Http *HTTPConfig
	App  *AppCfg
}

type LogCfg struct {
	Level slog.Level
}

// HTTPConfig описывает необязательный HTTP-сервер с отчётами.
// Сервер выключен, если HTTP_PORT не задан.
type HTTPConfig struct {
	Enabled      bool
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AppCfg struct {
	ShutdownTimeout time.Duration
	ForcedTimeout   time.Duration // время на принудительное закрытие ресурсов
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	logCfg, err := loadLogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	app, err := loadAppCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Log:  logCfg,
		Http: http,
		App:  app,
	}, nil
}

func loadLogCfg(log logger.Logger) (*LogCfg, error) {
	const defaultLevel = "info"

	level, err := logger.ParseLevel(getEnvOrDefault("LOG_LEVEL", defaultLevel))
	if err != nil {
		log.Errorf(err, "invalid LOG_LEVEL")
		return nil, e.Wrap("LOG_LEVEL", e.ErrIncorrectEnvVariable)
	}

	return &LogCfg{Level: level}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnv("HTTP_PORT")
	if port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			log.Errorf(err, "invalid HTTP_PORT")
			return nil, e.Wrap("HTTP_PORT", e.ErrIncorrectEnvVariable)
		}
	}

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Enabled:      port != "",
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadAppCfg(log logger.Logger) (*AppCfg, error) {
	const (
		defaultShutdownTimeout = 10 * time.Second
		defaultForcedTimeoutMs = 2000
	)

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, err
	}

	forcedMs, err := parseIntEnv("FORCED_SHUTDOWN_TIMEOUT_MS", defaultForcedTimeoutMs)
	if err != nil {
		log.Errorf(err, "invalid FORCED_SHUTDOWN_TIMEOUT_MS")
		return nil, e.Wrap("FORCED_SHUTDOWN_TIMEOUT_MS", err)
	}

	return &AppCfg{
		ShutdownTimeout: shutdownTimeout,
		ForcedTimeout:   time.Duration(forcedMs) * time.Millisecond,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
		}
		return d, nil
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
