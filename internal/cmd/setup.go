package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"calkit/internal/config"
	"calkit/internal/logger"
)

// setup loads configuration and initializes logging for one invocation of tool
func setup(tool string) (*config.Config, *logrus.Entry, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.LogConfig{
		Level:        cfg.Log.Level,
		FilePath:     cfg.Log.FilePath,
		Console:      cfg.Log.Console,
		RotationTime: cfg.Log.RotationTime,
		MaxSize:      cfg.Log.MaxSize,
		MaxBackups:   cfg.Log.MaxBackups,
		MaxAge:       cfg.Log.MaxAge,
		Compress:     cfg.Log.Compress,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.ForRun(tool), nil
}
