package stagelog

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

type config struct {
	level  zapcore.Level
	values bool
	newID  func() string
	now    func() time.Time
}

func defaultConfig() config {
	return config{
		level:  zapcore.DebugLevel,
		values: true,
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
	}
}

// Option configures a traced stage.
type Option func(*config)

// WithLevel sets the level of the per-call entry. Defaults to debug.
func WithLevel(level zapcore.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithoutValues omits stage inputs and outputs from the log entry.
func WithoutValues() Option {
	return func(c *config) {
		c.values = false
	}
}

// WithIDGenerator replaces the uuid call id generator.
func WithIDGenerator(newID func() string) Option {
	return func(c *config) {
		c.newID = newID
	}
}

// WithClock replaces time.Now as the source of call start and end times.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
