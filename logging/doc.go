// Package logging provides the slog logger used by the engine and by Fx
// applications embedding it.
package logging
