// Package logger provides the structured logger used across the objstore SDK.
//
// The logger package wraps Uber's Zap logger behind a small, stable API so
// that SDK packages (and applications embedding them) can log without
// depending on zap types directly. Every other package in this repository
// that logs does so through an optional Logger interface which *LoggerClient
// satisfies.
//
// # Architecture
//
//   - LoggerClient struct: thin wrapper around *zap.Logger
//   - NewLoggerClient constructor: builds a configured zap logger
//   - FX module: provides *LoggerClient and registers a flush-on-shutdown hook
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "uploader",
//	})
//	log.Info("client ready", nil, map[string]interface{}{
//	    "endpoint": "play.min.io",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "uploader"}
//	    }),
//	    // other modules...
//	)
//
// # Output
//
// Logs are JSON-encoded to stderr with ISO8601 timestamps, capitalized
// levels, caller information, and constant "service" and "pid" fields.
package logger
