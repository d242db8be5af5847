// Package logging provides structured logging channels for portfolio-server
// operations.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Business logic channels
	ChannelAuth    Channel = "auth"    // Authentication and authorization
	ChannelContent Channel = "content" // Content management operations
	ChannelEmail   Channel = "email"   // Outbound mail

	// Infrastructure channels
	ChannelDatabase Channel = "database" // Storage operations
	ChannelPerf     Channel = "performance"
)

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool       `json:"outputToFile"`    // Whether to write logs to files
	OutputToConsole bool       `json:"outputToConsole"` // Whether to write logs to console
	LogDirectory    string     `json:"logDirectory"`    // Directory for log files
	JSONFormat      bool       `json:"jsonFormat"`      // Use JSON format for structured logging
	DefaultLevel    slog.Level `json:"defaultLevel"`    // Default log level
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    true,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		DefaultLevel:    slog.LevelInfo,
	}
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	channels := []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelAuth, ChannelContent, ChannelEmail,
		ChannelDatabase, ChannelPerf,
	}

	for _, channel := range channels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// createChannelLogger creates a slog.Logger for a specific channel
func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	var writers []io.Writer

	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}

	if cl.config.OutputToFile {
		filename := fmt.Sprintf("%s.log", string(channel))
		path := filepath.Join(cl.config.LogDirectory, filename)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stdout
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{Level: cl.config.DefaultLevel}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With("channel", string(channel)), nil
}

func (cl *ChanneledLogger) channel(c Channel) *slog.Logger {
	if l, ok := cl.channels[c]; ok {
		return l
	}
	return slog.Default()
}

// System returns the general system channel.
func (cl *ChanneledLogger) System() *slog.Logger { return cl.channel(ChannelSystem) }

// Startup returns the startup channel.
func (cl *ChanneledLogger) Startup() *slog.Logger { return cl.channel(ChannelStartup) }

// Shutdown returns the shutdown channel.
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.channel(ChannelShutdown) }

// Auth returns the authentication channel.
func (cl *ChanneledLogger) Auth() *slog.Logger { return cl.channel(ChannelAuth) }

// Content returns the content-management channel.
func (cl *ChanneledLogger) Content() *slog.Logger { return cl.channel(ChannelContent) }

// Email returns the outbound-mail channel.
func (cl *ChanneledLogger) Email() *slog.Logger { return cl.channel(ChannelEmail) }

// Database returns the storage channel.
func (cl *ChanneledLogger) Database() *slog.Logger { return cl.channel(ChannelDatabase) }

// Perf returns the performance channel.
func (cl *ChanneledLogger) Perf() *slog.Logger { return cl.channel(ChannelPerf) }
