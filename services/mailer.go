package services

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"mkh-consultation-backend/config"
	"mkh-consultation-backend/models"
	"mkh-consultation-backend/utils"

	"gopkg.in/gomail.v2"
)

// The three delivery failure classes are kept distinct so the controller can
// map each to its own status and user-facing message.
var (
	ErrMailNotConfigured = errors.New("email service is not configured")
	ErrMailVerifyFailed  = errors.New("email service verification failed")
	ErrMailSendFailed    = errors.New("failed to send email")
)

const reportEmailSubject = "Your Hair Consultation Form Submission"
const datesEmailSubject = "Your Perfect Hair Days Confirmation"

// Mailer composes and dispatches consultation emails over SMTP.
type Mailer struct {
	cfg    config.MailSettings
	dialer *gomail.Dialer
}

// NewMailer returns ErrMailNotConfigured when SMTP credentials are missing,
// before any network activity is attempted.
func NewMailer(cfg config.MailSettings) (*Mailer, error) {
	if !cfg.Configured() {
		return nil, ErrMailNotConfigured
	}
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

// Verify dials and authenticates against the transport without sending.
func (m *Mailer) Verify() error {
	sc, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailVerifyFailed, err)
	}
	sc.Close()
	return nil
}

// Send dispatches one composed message. A single synchronous attempt, no retry.
func (m *Mailer) Send(msg *gomail.Message) error {
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMailSendFailed, err)
	}
	return nil
}

// ComposeReport builds the full consultation report email. Every materialized
// image is embedded inline under a content-id matching its cid: reference in
// the HTML; nil slots are omitted from both sides.
func (m *Mailer) ComposeReport(input models.SubmissionInput, rec *Recommendation, images []*ImageAsset, dates []time.Time, consultationID string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.From, "MKH Hair Care"))
	msg.SetHeader("To", m.recipients(input.Email)...)
	msg.SetHeader("Subject", reportEmailSubject)
	msg.SetHeader("X-Consultation-ID", consultationID)

	embedded := make([]string, 0, len(images))
	for i, asset := range images {
		if asset == nil {
			continue
		}
		cid := asset.ContentID(i)
		embedded = append(embedded, cid)
		msg.Embed(cid,
			gomail.SetCopyFunc(copyBytes(asset.Bytes)),
			gomail.SetHeader(map[string][]string{"Content-Type": {asset.MIME}}),
		)
	}

	msg.SetBody("text/html", reportHTML(input, rec, embedded, dates))
	return msg
}

// ComposeDatesConfirmation builds the minimal secondary message listing only
// the selected dates.
func (m *Mailer) ComposeDatesConfirmation(email string, dates []time.Time) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.From, "MKH Hair Care"))
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", datesEmailSubject)
	msg.SetBody("text/html", datesHTML(dates))
	return msg
}

func (m *Mailer) recipients(clientEmail string) []string {
	if m.cfg.BusinessRecipient != "" && m.cfg.BusinessRecipient != clientEmail {
		return []string{clientEmail, m.cfg.BusinessRecipient}
	}
	return []string{clientEmail}
}

func copyBytes(data []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}
}

const emailWrapperOpen = `<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; background: #000000; color: white; padding: 40px; border-radius: 20px;">` +
	`<h1 style="color: #ff7f50; text-align: center; margin-bottom: 30px; font-size: 32px;">Hair Consultation Report</h1>`

const emailCardOpen = `<div style="background: rgba(255, 255, 255, 0.1); border-radius: 15px; padding: 30px; margin-bottom: 30px;">`

func reportHTML(input models.SubmissionInput, rec *Recommendation, embeddedCIDs []string, dates []time.Time) string {
	form := input.FormData
	var b strings.Builder
	b.WriteString(emailWrapperOpen)

	// Personal information
	b.WriteString(emailCardOpen)
	b.WriteString(`<h2 style="color: white; margin-bottom: 20px; font-size: 24px;">Personal Information</h2>`)
	writeKeyValue(&b, "Name", form.FirstName+" "+form.LastName)
	writeKeyValue(&b, "Email", form.Email)
	writeKeyValue(&b, "Phone", orNotProvided(form.Phone))
	b.WriteString(`</div>`)

	// Hair analysis profile
	b.WriteString(emailCardOpen)
	b.WriteString(`<h2 style="color: white; margin-bottom: 20px; font-size: 24px;">Hair Analysis Profile</h2>`)
	writeKeyValue(&b, "Natural Hair Color", orNotSpecified(form.NaturalHairColor))
	writeKeyValue(&b, "Skin Tone", orNotSpecified(form.SkinColor))
	writeKeyValue(&b, "Eye Color", orNotSpecified(form.EyeColor))
	writeKeyValue(&b, "Hair Texture", orNotSpecified(form.HairTexture))
	writeKeyValue(&b, "Hair Length", orNotSpecified(form.HairLength))
	writeKeyValue(&b, "Personal Style", orNotSpecified(form.PersonalStyle))
	writeKeyValue(&b, "Maintenance Preference", orNotSpecified(form.HairMaintenance))
	b.WriteString(`</div>`)

	// Professional recommendations with inlined style images
	if rec != nil {
		b.WriteString(emailCardOpen)
		b.WriteString(`<h2 style="color: white; margin-bottom: 20px; font-size: 24px;">Professional Recommendations</h2>`)
		fmt.Fprintf(&b, `<h3 style="color: #ff7f50; margin-bottom: 10px;">%s</h3>`, html.EscapeString(rec.Title))
		fmt.Fprintf(&b, `<p style="color: rgba(255, 255, 255, 0.9);">%s</p>`, html.EscapeString(rec.Description))
		fmt.Fprintf(&b, `<p style="color: rgba(255, 255, 255, 0.9);"><strong>Hair Care Routine:</strong> %s</p>`, html.EscapeString(rec.HairCare))
		b.WriteString(`<p style="color: white;"><strong>Maintenance Schedule:</strong></p><ul style="color: rgba(255, 255, 255, 0.9);">`)
		for _, entry := range rec.MaintenanceSchedule {
			fmt.Fprintf(&b, `<li>%s</li>`, html.EscapeString(entry))
		}
		b.WriteString(`</ul>`)

		for _, cid := range embeddedCIDs {
			fmt.Fprintf(&b, `<img src="cid:%s" alt="Recommended style" style="max-width: 45%%; height: auto; border-radius: 10px; margin: 5px;">`, cid)
		}
		b.WriteString(`</div>`)
	}

	// Preferences and treatments
	b.WriteString(emailCardOpen)
	b.WriteString(`<h2 style="color: white; margin-bottom: 20px; font-size: 24px;">Preferences</h2>`)
	writeKeyValue(&b, "Special Occasions", orNotSpecified(strings.Join(form.SpecialOccasions, ", ")))
	writeKeyValue(&b, "Preferred Treatments", orNotSpecified(strings.Join(form.PreferredTreatments, ", ")))
	writeKeyValue(&b, "Work Type", orNotSpecified(form.WorkType))
	writeKeyValue(&b, "Work Industry", orNotSpecified(form.WorkIndustry))
	b.WriteString(`</div>`)

	// Selected dates
	b.WriteString(emailCardOpen)
	b.WriteString(`<h2 style="color: white; margin-bottom: 20px; font-size: 24px;">Selected Perfect Hair Days</h2>`)
	b.WriteString(`<ol style="margin: 0; padding-left: 20px; color: white;">`)
	for _, d := range dates {
		fmt.Fprintf(&b, `<li>%s</li>`, utils.FormatLongDate(d))
	}
	b.WriteString(`</ol>`)
	fmt.Fprintf(&b, `<p style="color: rgba(255, 255, 255, 0.8); font-size: 14px;"><strong>Total dates selected:</strong> %d</p>`, len(dates))
	b.WriteString(`<p style="color: rgba(255, 255, 255, 0.7); font-size: 12px; font-style: italic;">We'll send you a reminder 2 weeks before each date to consult or set an appointment.</p>`)
	b.WriteString(`</div>`)

	// Footer / disclaimer
	b.WriteString(`<div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid rgba(255, 255, 255, 0.2);">`)
	fmt.Fprintf(&b, `<p style="color: rgba(255, 255, 255, 0.7); font-size: 13px;">%s</p>`, html.EscapeString(reportDisclaimer))
	b.WriteString(`<p style="color: rgba(255, 255, 255, 0.5); font-size: 12px; margin-top: 10px;">This email was sent by the MKH hair consultation service.</p>`)
	b.WriteString(`</div></div>`)

	return b.String()
}

func datesHTML(dates []time.Time) string {
	var b strings.Builder
	b.WriteString(emailWrapperOpen)
	b.WriteString(emailCardOpen)
	b.WriteString(`<h2 style="color: white; margin-bottom: 20px; font-size: 24px;">Your Selected Dates</h2>`)
	for i, d := range dates {
		fmt.Fprintf(&b, `<p style="color: white; margin: 6px 0;">%d. %s</p>`, i+1, utils.FormatLongDate(d))
	}
	fmt.Fprintf(&b, `<p style="color: rgba(255, 255, 255, 0.8); font-size: 14px;"><strong>Total dates selected:</strong> %d</p>`, len(dates))
	b.WriteString(`</div></div>`)
	return b.String()
}

func writeKeyValue(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, `<div style="margin-bottom: 10px;"><strong>%s:</strong> %s</div>`,
		html.EscapeString(key), html.EscapeString(value))
}
