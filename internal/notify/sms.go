package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jonathan/aro-monitor/internal/config"
	"github.com/jonathan/aro-monitor/internal/types"
)

// MessageCreator sends one outbound message. The Twilio API service
// satisfies it.
type MessageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// SMSNotifier sends short availability alerts through Twilio. The channel is
// optional: without account credentials no client is built, and every SMS
// code path gates on Enabled rather than probing configuration piecemeal.
type SMSNotifier struct {
	cfg    config.Config
	client MessageCreator
}

// NewSMSNotifier builds the channel. The Twilio client exists only when both
// account credentials are present; the capability check happens once, here.
func NewSMSNotifier(cfg config.Config) *SMSNotifier {
	n := &SMSNotifier{cfg: cfg}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		rc := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		n.client = rc.Api
	}
	return n
}

// Name identifies the channel in logs.
func (n *SMSNotifier) Name() string { return "sms" }

// Enabled reports whether the Twilio client and both phone numbers are
// configured.
func (n *SMSNotifier) Enabled() bool {
	return n.client != nil && n.cfg.TwilioPhone != "" && n.cfg.NotificationPhone != ""
}

// Notify sends a short message with the match count and target URL.
func (n *SMSNotifier) Notify(_ context.Context, matches []types.Match) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(n.cfg.TwilioPhone)
	params.SetTo(n.cfg.NotificationPhone)
	params.SetBody(smsBody(n.cfg.PropertyName, n.cfg.TargetURL, len(matches)))

	if _, err := n.client.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms to %s: %w", n.cfg.NotificationPhone, err)
	}
	return nil
}
