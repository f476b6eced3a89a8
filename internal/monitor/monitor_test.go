package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/aro-monitor/internal/config"
	"github.com/jonathan/aro-monitor/internal/fetch"
	"github.com/jonathan/aro-monitor/internal/types"
)

const availableHTML = `
<html><body>
	<div class="apartment-card">ARO 1 Bed unit, available now</div>
	<div class="apartment-card">ARO 1 bed, waitlist</div>
</body></html>`

const unavailableHTML = `
<html><body>
	<div class="apartment-card">ARO 1 bed, join the waitlist</div>
</body></html>`

type fakeChannel struct {
	name    string
	enabled bool
	err     error
	calls   int
	got     []types.Match
}

func (f *fakeChannel) Name() string  { return f.name }
func (f *fakeChannel) Enabled() bool { return f.enabled }
func (f *fakeChannel) Notify(_ context.Context, matches []types.Match) error {
	f.calls++
	f.got = matches
	if f.err != nil {
		return f.err
	}
	return nil
}

func staticFetch(html string) FetchFunc {
	return func(_ context.Context, urlStr string, _ *fetch.Options) (*fetch.Result, error) {
		return &fetch.Result{URL: urlStr, HTML: html, StatusCode: http.StatusOK}, nil
	}
}

func failingFetch(err error) FetchFunc {
	return func(_ context.Context, _ string, _ *fetch.Options) (*fetch.Result, error) {
		return nil, err
	}
}

func newTestMonitor(fetchFn FetchFunc, email, sms *fakeChannel) *Monitor {
	return New(Options{
		Config: config.Config{
			TargetURL:    "https://example.com/floorplans",
			PropertyName: "Lincoln Commons",
		},
		Email:   email,
		SMS:     sms,
		FetchFn: fetchFn,
		Now:     func() time.Time { return time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC) },
	})
}

func TestRunCycle_FetchFailure(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: true}
	sms := &fakeChannel{name: "sms", enabled: true}
	m := newTestMonitor(failingFetch(errors.New("connection refused")), email, sms)

	assert.False(t, m.RunCycle(context.Background()))
	assert.Zero(t, email.calls)
	assert.Zero(t, sms.calls)
}

func TestRunCycle_FetchFailureNeverPanics(t *testing.T) {
	// Real fetcher against a dead server: the failure is absorbed inside
	// the cycle, not surfaced.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	url := server.URL
	server.Close()

	m := New(Options{
		Config: config.Config{TargetURL: url, PropertyName: "Lincoln Commons"},
		Email:  &fakeChannel{name: "email"},
		SMS:    &fakeChannel{name: "sms"},
	})

	assert.NotPanics(t, func() {
		assert.False(t, m.RunCycle(context.Background()))
	})
}

func TestRunCycle_NoMatches(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: true}
	sms := &fakeChannel{name: "sms", enabled: true}
	m := newTestMonitor(staticFetch("<html><body><p>nothing here</p></body></html>"), email, sms)

	assert.False(t, m.RunCycle(context.Background()))
	assert.Zero(t, email.calls)
	assert.Zero(t, sms.calls)
}

func TestRunCycle_MatchesButNoneAvailable(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: true}
	sms := &fakeChannel{name: "sms", enabled: true}
	m := newTestMonitor(staticFetch(unavailableHTML), email, sms)

	assert.False(t, m.RunCycle(context.Background()))
	assert.Zero(t, email.calls)
	assert.Zero(t, sms.calls)
}

func TestRunCycle_AvailabilityNotifiesBothChannels(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: true}
	sms := &fakeChannel{name: "sms", enabled: true}
	m := newTestMonitor(staticFetch(availableHTML), email, sms)

	assert.True(t, m.RunCycle(context.Background()))
	assert.Equal(t, 1, email.calls)
	assert.Equal(t, 1, sms.calls)

	// Only the available match is forwarded.
	require.Len(t, email.got, 1)
	assert.True(t, email.got[0].Available)
	assert.Equal(t, email.got, sms.got)
}

func TestRunCycle_TrueEvenWhenBothChannelsFail(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: true, err: errors.New("smtp down")}
	sms := &fakeChannel{name: "sms", enabled: true, err: errors.New("twilio down")}
	m := newTestMonitor(staticFetch(availableHTML), email, sms)

	assert.True(t, m.RunCycle(context.Background()))
	assert.Equal(t, 1, email.calls)
	assert.Equal(t, 1, sms.calls)
}

func TestRunCycle_EmailFailureStillAttemptsSMS(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: true, err: errors.New("smtp down")}
	sms := &fakeChannel{name: "sms", enabled: true}
	m := newTestMonitor(staticFetch(availableHTML), email, sms)

	assert.True(t, m.RunCycle(context.Background()))
	assert.Equal(t, 1, sms.calls)
}

func TestRunCycle_DisabledChannelsSkipped(t *testing.T) {
	email := &fakeChannel{name: "email", enabled: false}
	sms := &fakeChannel{name: "sms", enabled: false}
	m := newTestMonitor(staticFetch(availableHTML), email, sms)

	// Availability was still detected.
	assert.True(t, m.RunCycle(context.Background()))
	assert.Zero(t, email.calls)
	assert.Zero(t, sms.calls)
}
