// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports multiple output formats ([FormatJSON], [FormatLogfmt]) and the
// four standard [log/slog] severity levels. Use [CreateHandler] (or
// [CreateHandlerWithStrings] when the level/format come from user-supplied
// strings, e.g. CLI flags) to build a handler directly, or use [Config] for
// CLI flag integration via [github.com/spf13/pflag] and shell completion
// support via [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
