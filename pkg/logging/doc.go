// Package logging configures the structured logger shared by blogadmin.
//
// It wraps log/slog so the CLI and the library packages log the same way.
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("request", "method", "POST", "path", "/api/v1/tag/list")
//
// Library types accept a *slog.Logger through an option; when none is given
// they use Nop().
package logging
