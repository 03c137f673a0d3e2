// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.NewLogger()
//	logger.Info("analysis stored", slog.String("id", id.String()))
//
// LOG_LEVEL selects the minimum level (debug, info, warn, error) and
// LOG_FORMAT selects json (default) or text output.
package logging
