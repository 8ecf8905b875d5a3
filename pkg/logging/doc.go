// Package logging provides structured logging configuration for fixture.
//
// This package wraps log/slog to provide consistent logging across fixture
// components. It supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	f := factory.New(gen, factory.WithLogger(logger))
//
// Factories and generators trace their build pipelines at debug level.
//
// # Output Formats
//
//   - Text: Human-readable format for development
//   - JSON: Structured format for log aggregation systems
//
// # Integration
//
// Components accept a *slog.Logger through their WithLogger option. If a
// logger is required but logging is disabled, use logging.Nop().
package logging
