package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig ...
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`

	// File enables rotated file output when not empty
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func (c LogConfig) zapLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// NewLogger creates a zap logger from config
func NewLogger(conf LogConfig) *zap.Logger {
	zapConf := zap.NewProductionConfig()
	if conf.Development {
		zapConf = zap.NewDevelopmentConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(conf.zapLevel())
	zapConf.EncoderConfig.TimeKey = "timestamp"
	zapConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if conf.File == "" {
		logger, err := zapConf.Build()
		if err != nil {
			panic(err)
		}
		return logger
	}

	writer := &lumberjack.Logger{
		Filename:   conf.File,
		MaxSize:    defaultInt(conf.MaxSizeMB, 100),
		MaxBackups: defaultInt(conf.MaxBackups, 3),
		MaxAge:     defaultInt(conf.MaxAgeDays, 28),
		Compress:   true,
	}

	encoder := zapcore.NewJSONEncoder(zapConf.EncoderConfig)
	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), zapConf.Level)
	return zap.New(core, zap.AddCaller())
}

func defaultInt(n int, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
