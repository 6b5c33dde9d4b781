// Package logging wraps log/slog with the console and JSON handlers used
// across silbe, plus small attribute helpers so call sites stay terse.
package logging
