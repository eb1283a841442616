package browserdetails

import (
	"context"
	"net/http"
)

// Form body inspection limits. The whole peeked body is held in memory.
const (
	DefaultMaxFormBytes int64 = 1 << 20
	MaxFormBytesLimit   int64 = 32 << 20
)

// Observer receives the structured details of every request that produced a message.
type Observer func(ctx context.Context, d Details)

// Option configures the middleware and snapshot construction.
type Option func(*options)

type options struct {
	builder      *Builder
	log          LogFunc
	observers    []Observer
	ajax         AjaxDetector
	maxFormBytes int64
}

func newOptions(opts ...Option) *options {
	o := &options{
		ajax:         IsXHR,
		maxFormBytes: DefaultMaxFormBytes,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.builder == nil {
		o.builder = defaultBuilder
	}
	return o
}

// WithLogFunc sets where messages go. Nil disables logging.
func WithLogFunc(fn LogFunc) Option {
	return func(o *options) { o.log = fn }
}

// WithParser replaces the User-Agent parser.
func WithParser(p Parser) Option {
	return func(o *options) { o.builder = NewBuilder(p) }
}

// WithObserver registers a hook called alongside the log function.
// Nil observers are ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithAjaxDetector replaces the X-Requested-With check.
func WithAjaxDetector(d AjaxDetector) Option {
	return func(o *options) { o.ajax = d }
}

// WithMaxFormBytes sets the form body inspection limit, clamped to
// MaxFormBytesLimit. Panics for non-positive values since that is a wiring mistake.
func WithMaxFormBytes(n int64) Option {
	if n <= 0 {
		panic("WithMaxFormBytes: limit must be > 0")
	}
	n = min(n, MaxFormBytesLimit)
	return func(o *options) { o.maxFormBytes = n }
}

// Middleware logs a one-line description of the client's browser and
// scripting support for each request, then calls next with the same writer
// and request. Nothing it does can fail the request.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			o.report(r)
			next.ServeHTTP(w, r)
		})
	}
}

// report describes r and emits the result. Panics raised while gathering
// details or inside a sink are swallowed; one failing sink does not stop the others.
func (o *options) report(r *http.Request) {
	if o.log == nil && len(o.observers) == 0 {
		return
	}

	var details Details
	contained(func() { details = o.builder.Describe(o.snapshot(r)) })
	if details.Empty() {
		return
	}

	ctx := r.Context()
	if o.log != nil {
		message := details.String()
		contained(func() { o.log(ctx, message) })
	}
	for _, obs := range o.observers {
		contained(func() { obs(ctx, details) })
	}
}

func contained(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
