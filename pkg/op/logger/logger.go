// Package logger builds the zap logger used by pipeline programs. The
// library packages never log on their own; they log through the logger
// carried by the context (see core.WithLogger).
package logger

import (
	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	callerKey  = "file"
	timeKey    = "time"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	// Valid values are: "debug", "info", "warn", "error"
	Level string `yaml:"level" validate:"oneof=debug info warn error" default:"info"`

	// Encoding specifies the log format: "json" or "console".
	Encoding string `yaml:"encoding" validate:"oneof=json console" default:"console"`
}

// New creates a zap logger with the provided configuration.
func New(cfg Config) (*zap.Logger, error) {
	zapConfig, err := cfg.zapConfig()
	if err != nil {
		return nil, err
	}

	l, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return l, nil
}

func (c Config) zapConfig() (*zap.Config, error) {
	zapLevel := zap.NewAtomicLevel()

	err := zapLevel.UnmarshalText([]byte(c.Level))
	if err != nil {
		return nil, errx.Wrap(err)
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if c.Encoding == EncodingConsole {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	return &zap.Config{
		Level:            zapLevel,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		Encoding:         c.Encoding,
		EncoderConfig:    encoderConfig,
	}, nil
}
