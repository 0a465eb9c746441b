package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New - логгер для сервисов (api, worker, migrate), пишет в stdout
func New(level string) (*zap.Logger, error) {
	return NewWithOutput(level, "stdout")
}

// NewWithOutput - логгер с произвольным выводом. Терминальному клиенту
// stdout занят интерфейсом, поэтому он пишет в файл.
func NewWithOutput(level string, output string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	if output == "" {
		output = "stdout"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level == "debug" && output == "stdout" {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}
