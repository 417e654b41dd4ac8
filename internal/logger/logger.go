package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/DeRuina/timberjack"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// Logger is the global logger instance
	Logger *logrus.Logger
	// initialized tracks if logger has been initialized
	initialized bool
	// fileWriter is the rotating writer opened by Init, closed by Close
	fileWriter *timberjack.Logger
)

// LogConfig holds configuration for logging
type LogConfig struct {
	Level        string    // "debug", "info", "warn", "error"
	FilePath     string    // Path to log file, empty for no file
	Console      bool      // Write to Stderr as well
	Stderr       io.Writer // Console destination, os.Stderr when nil
	RotationTime string    // Time-based rotation interval (e.g., "1h", "24h")
	MaxSize      int       // Maximum size in megabytes before rotation
	MaxBackups   int       // Maximum number of old log files to retain
	MaxAge       int       // Maximum number of days to retain old log files
	Compress     bool      // Whether to compress rotated log files
}

// Init initializes the global logger with the given configuration.
// Standard output is never used: it carries the tools' own output.
func Init(config LogConfig) error {
	// If already initialized, just return to prevent duplicate initialization
	if initialized && Logger != nil {
		return nil
	}

	// If Logger exists but not initialized (from GetLogger fallback), reuse it
	if Logger == nil {
		Logger = logrus.New()
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	Logger.SetLevel(level)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	var writers []io.Writer

	if config.Console {
		stderr := config.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
	}

	if config.FilePath != "" {
		dir := filepath.Dir(config.FilePath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		maxSize := config.MaxSize
		if maxSize == 0 {
			maxSize = 10 // Default: 10MB
		}
		maxBackups := config.MaxBackups
		if maxBackups == 0 {
			maxBackups = 3
		}
		maxAge := config.MaxAge
		if maxAge == 0 {
			maxAge = 28
		}

		rotationDuration := 24 * time.Hour
		if config.RotationTime != "" {
			var err error
			rotationDuration, err = time.ParseDuration(config.RotationTime)
			if err != nil {
				return fmt.Errorf("invalid rotation_time: %w", err)
			}
		}

		compression := ""
		if config.Compress {
			compression = "gzip"
		}

		fileWriter = &timberjack.Logger{
			Filename:         config.FilePath,
			MaxSize:          maxSize,    // megabytes
			MaxBackups:       maxBackups, // number of backups
			MaxAge:           maxAge,     // days
			RotationInterval: rotationDuration,
			Compression:      compression,
			LocalTime:        true,
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		Logger.SetOutput(io.Discard)
	} else {
		Logger.SetOutput(io.MultiWriter(writers...))
	}

	initialized = true

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		// Fallback: discard until Init configures real writers
		Logger = logrus.New()
		Logger.SetOutput(io.Discard)
		Logger.SetLevel(logrus.WarnLevel)
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}
	return Logger
}

// ForRun returns an entry tagged with the tool name and a fresh run ID, so the lines of
// one invocation can be grouped in a shared log file
func ForRun(tool string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"tool":   tool,
		"run_id": uuid.NewString(),
	})
}

// Close flushes and closes the log file, if any, and allows Init to run again
func Close() error {
	var err error
	if fileWriter != nil {
		err = fileWriter.Close()
		fileWriter = nil
	}
	if Logger != nil {
		Logger.SetOutput(io.Discard)
	}
	initialized = false
	return err
}
