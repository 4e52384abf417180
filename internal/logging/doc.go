// Package logging builds the slog loggers used across Encore.
//
// Two output formats exist: a console handler that renders compact,
// color-capable lines for interactive use, and a JSON handler for log files
// and machine consumption. Writers can fan out to stdout and a log file at
// the same time. Components attach themselves with WithComponent so every
// line carries its origin.
package logging
