// services/sms.go
package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"mkh-consultation-backend/config"
	"mkh-consultation-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSService sends a dates confirmation text after a successful submission.
// It is strictly best effort: every failure is logged and swallowed so a
// Twilio outage can never fail a consultation.
type SMSService struct {
	cfg    config.SMSSettings
	client *twilio.RestClient
}

// NewSMSService returns nil when Twilio credentials are not configured.
// Callers treat a nil service as "SMS disabled".
func NewSMSService(cfg config.SMSSettings) *SMSService {
	if !cfg.Enabled() {
		return nil
	}
	return &SMSService{
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
	}
}

// SendDatesConfirmation texts the client a summary of their selected dates.
func (s *SMSService) SendDatesConfirmation(phone string, dates []time.Time) {
	if s == nil {
		return
	}
	if !utils.ValidatePhone(phone) {
		log.Printf("Skipping SMS confirmation: invalid phone number %q", phone)
		return
	}

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format("Jan 2, 2006")
	}
	body := fmt.Sprintf(
		"MKH Hair Care: your consultation was received. Perfect Hair Days: %s. We'll remind you 2 weeks before each date.",
		strings.Join(formatted, ", "),
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.cfg.FromNumber)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS confirmation to %s: %v", phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("SMS confirmation sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("SMS confirmation sent to %s, but no SID returned", phone)
	}
}
