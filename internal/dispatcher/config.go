package dispatcher

import "time"

// Config controls optional dispatcher behavior.
type Config struct {
	// EnableMetrics collects per-action counts and timings.
	EnableMetrics bool

	// RecoverFromPanic converts a panic inside an action into ErrPanic.
	RecoverFromPanic bool

	// SlowThreshold logs a warning for any dispatch that takes longer.
	// Zero disables the check.
	SlowThreshold time.Duration
}

// DefaultConfig recovers from panics and flags dispatches slower than a
// frame.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		SlowThreshold:    16 * time.Millisecond,
	}
}

// WithMetrics enables metrics collection.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery sets whether panics are recovered.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithSlowThreshold sets the slow dispatch warning threshold.
func (c Config) WithSlowThreshold(d time.Duration) Config {
	c.SlowThreshold = d
	return c
}
