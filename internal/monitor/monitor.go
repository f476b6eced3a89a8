// Package monitor orchestrates one fetch-scan-notify cycle.
package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/aro-monitor/internal/config"
	"github.com/jonathan/aro-monitor/internal/fetch"
	"github.com/jonathan/aro-monitor/internal/logging"
	"github.com/jonathan/aro-monitor/internal/scan"
	"github.com/jonathan/aro-monitor/internal/types"
)

// Channel is one notification delivery mechanism.
type Channel interface {
	Name() string
	Enabled() bool
	Notify(ctx context.Context, matches []types.Match) error
}

// FetchFunc retrieves the listing page. It matches fetch.URL.
type FetchFunc func(ctx context.Context, urlStr string, opts *fetch.Options) (*fetch.Result, error)

// Options wires a Monitor together. Config, Logger, Email, and SMS are
// required; FetchFn and Now default to fetch.URL and time.Now.
type Options struct {
	Config  config.Config
	Logger  logging.Logger
	Email   Channel
	SMS     Channel
	FetchFn FetchFunc
	Now     func() time.Time
}

// Monitor runs availability checks against a single listing page. It holds
// no state between cycles; periodic re-invocation comes from outside.
type Monitor struct {
	cfg     config.Config
	log     logging.Logger
	email   Channel
	sms     Channel
	fetchFn FetchFunc
	now     func() time.Time
}

// New builds a Monitor from the given options.
func New(opts Options) *Monitor {
	m := &Monitor{
		cfg:     opts.Config,
		log:     opts.Logger,
		email:   opts.Email,
		sms:     opts.SMS,
		fetchFn: opts.FetchFn,
		now:     opts.Now,
	}
	if m.log == nil {
		m.log = logging.Nop()
	}
	if m.fetchFn == nil {
		m.fetchFn = fetch.URL
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// RunCycle performs one fetch-scan-notify pass. The return value reports
// whether availability was detected, not whether any notification was
// delivered. Every failure inside the cycle is logged and absorbed; nothing
// escapes as an error.
func (m *Monitor) RunCycle(ctx context.Context) bool {
	log := m.log.With(logging.String("run_id", uuid.NewString()))
	log.Info("starting availability check", logging.String("url", m.cfg.TargetURL))

	res, err := m.fetchFn(ctx, m.cfg.TargetURL, nil)
	if err != nil {
		log.Error("fetch failed, no data this cycle", logging.Error(err))
		return false
	}

	matches := scan.Matches(res.HTML, m.now())
	log.Info("scan complete", logging.Int("matches", len(matches)))

	available := scan.Available(matches)
	if len(available) == 0 {
		log.Info("no available ARO one-bedroom units found")
		return false
	}

	log.Info("available ARO one-bedroom units found", logging.Int("count", len(available)))

	emailSent := m.dispatch(ctx, log, m.email, available)
	smsSent := m.dispatch(ctx, log, m.sms, available)

	if emailSent || smsSent {
		log.Info("notifications sent",
			logging.Bool("email", emailSent),
			logging.Bool("sms", smsSent))
	} else {
		log.Warn("no notification channel delivered")
	}

	return true
}

// dispatch attempts one channel and reports delivery. Unconfigured channels
// are skipped with a warning; transport failures are logged and absorbed.
func (m *Monitor) dispatch(ctx context.Context, log logging.Logger, ch Channel, matches []types.Match) bool {
	if ch == nil {
		return false
	}
	if !ch.Enabled() {
		log.Warn("channel configuration incomplete, skipping",
			logging.String("channel", ch.Name()))
		return false
	}
	if err := ch.Notify(ctx, matches); err != nil {
		log.Error("notification failed",
			logging.String("channel", ch.Name()),
			logging.Error(err))
		return false
	}
	log.Info("notification sent", logging.String("channel", ch.Name()))
	return true
}
