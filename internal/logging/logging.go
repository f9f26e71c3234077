package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/IRONalways17/LLM-Custom-Bot/internal/config"
)

// New builds the process logger. Output always goes to stdout; when
// cfg.LogFile is set it is also written to a rotating file.
func New(cfg *config.Config, service string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if cfg.IsDevelopment() {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var consoleEncoder zapcore.Encoder
	if cfg.IsDevelopment() {
		consoleEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if cfg.LogFile != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: cfg.LogFile, MaxSize: 100, MaxAge: 28, Compress: true,
			}),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...)).With(zap.String("service", service)), nil
}
