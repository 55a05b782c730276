// Package logging assembles the structured slog loggers used across
// cine-insights commands.
//
// It owns the console/JSON handler selection, centralizes level parsing, and
// re-exports slog attribute constructors so call sites stay terse. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
