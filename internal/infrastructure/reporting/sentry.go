// Package reporting forwards unexpected errors to Sentry. Without a DSN every
// method is a no-op, so callers never need to check whether it is enabled.
package reporting

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

type Options struct {
	DSN         string
	Environment string
	SampleRate  float64
	Release     string
}

// Reporter wraps the global Sentry hub.
type Reporter struct {
	enabled bool
}

// NewReporter initialises Sentry. A missing DSN or a failed init yields a
// disabled reporter; neither stops the service.
func NewReporter(opts Options, log zerolog.Logger) *Reporter {
	if opts.DSN == "" {
		log.Info().Msg("SENTRY_DSN not set, error reporting disabled")
		return &Reporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		TracesSampleRate: opts.SampleRate,
		EnableTracing:    opts.SampleRate > 0,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sentry initialization failed, error reporting disabled")
		return &Reporter{}
	}

	log.Info().Str("environment", opts.Environment).Msg("sentry initialized")
	return &Reporter{enabled: true}
}

func (r *Reporter) Enabled() bool { return r != nil && r.enabled }

// CaptureError sends err with the given tags attached.
func (r *Reporter) CaptureError(err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events to be delivered.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}

// Recover reports a panic in progress and re-panics. Use with defer at the
// top of a goroutine.
func (r *Reporter) Recover() {
	if !r.Enabled() {
		return
	}
	if v := recover(); v != nil {
		sentry.CurrentHub().Recover(v)
		sentry.Flush(2 * time.Second)
		panic(v)
	}
}
