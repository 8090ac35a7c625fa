// Package logging provides structured logging configuration for fleetgen.
//
// It wraps log/slog so the CLI and any embedding program log consistently:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//	logger.Info("sampling devices", "count", n, "seed", seed)
//
// The generator packages themselves never log; sampling is pure. Logging
// belongs to the surrounding tooling.
package logging
