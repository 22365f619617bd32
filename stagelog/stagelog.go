// Package stagelog wraps pipeline stages with structured zap logging.
//
// A traced stage behaves exactly like the function it wraps. Each call emits
// one entry carrying the stage name, a call id, the call's time span and,
// unless WithoutValues is given, the input and output values. A panicking
// stage is logged at error level and the panic is re-raised.
//
//	format := stagelog.Traced(logger, "format", strconv.Itoa)
//	pipeline := xform.Comp2(render, format)
package stagelog

import (
	"time"

	"github.com/on-the-ground/xform_go/xform"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

const (
	msgStageCall  = "stage call"
	msgStagePanic = "stage panicked"
)

type tracer struct {
	logger *zap.Logger
	name   string
	cfg    config
}

func newTracer(logger *zap.Logger, name string, opts []Option) *tracer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &tracer{logger: logger, name: name, cfg: cfg}
}

type call struct {
	t     *tracer
	id    string
	start time.Time
}

// begin returns nil when the configured level is disabled.
func (t *tracer) begin() *call {
	if !t.logger.Core().Enabled(t.cfg.level) {
		return nil
	}
	return &call{t: t, id: t.cfg.newID(), start: t.cfg.now()}
}

func (c *call) fields(in, trailing, out any) []zap.Field {
	span := timespan.BetweenTimes(c.start, c.t.cfg.now())
	fields := []zap.Field{
		zap.String("stage", c.t.name),
		zap.String("call_id", c.id),
		zap.Time("start", span.Start()),
		zap.Duration("elapsed", span.Duration()),
	}
	if c.t.cfg.values {
		fields = append(fields, zap.Any("in", in))
		if trailing != nil {
			fields = append(fields, zap.Any("trailing", trailing))
		}
		fields = append(fields, zap.Any("out", out))
	}
	return fields
}

func (c *call) end(in, trailing, out any) {
	if c == nil {
		return
	}
	if ce := c.t.logger.Check(c.t.cfg.level, msgStageCall); ce != nil {
		ce.Write(c.fields(in, trailing, out)...)
	}
}

func (c *call) fail(in, trailing any, r any) {
	if c == nil {
		panic(r)
	}
	fields := append(c.fields(in, trailing, nil), zap.Any("panic", r))
	c.t.logger.Error(msgStagePanic, fields...)
	panic(r)
}

// Traced returns f wrapped so that every call is logged under name.
func Traced[X, R any](logger *zap.Logger, name string, f func(X) R, opts ...Option) func(X) R {
	t := newTracer(logger, name, opts)
	return func(x X) R {
		c := t.begin()
		defer func() {
			if r := recover(); r != nil {
				c.fail(x, nil, r)
			}
		}()
		out := f(x)
		c.end(x, nil, out)
		return out
	}
}

// TracedY1 is Traced for stages that take one trailing argument.
func TracedY1[X, Y1, R any](logger *zap.Logger, name string, f func(X, Y1) R, opts ...Option) func(X, Y1) R {
	t := newTracer(logger, name, opts)
	return func(x X, y1 Y1) R {
		c := t.begin()
		defer func() {
			if r := recover(); r != nil {
				c.fail(x, y1, r)
			}
		}()
		out := f(x, y1)
		c.end(x, y1, out)
		return out
	}
}

// TracedFn is Traced for dynamic chains.
func TracedFn(logger *zap.Logger, name string, f xform.Fn, opts ...Option) xform.Fn {
	t := newTracer(logger, name, opts)
	return func(x any, ys ...any) any {
		c := t.begin()
		var trailing any
		if c != nil && len(ys) > 0 {
			trailing = xform.Tuplify(ys...)
		}
		defer func() {
			if r := recover(); r != nil {
				c.fail(x, trailing, r)
			}
		}()
		out := f(x, ys...)
		c.end(x, trailing, out)
		return out
	}
}
