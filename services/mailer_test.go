package services

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"mkh-consultation-backend/config"
	"mkh-consultation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredMail() config.MailSettings {
	return config.MailSettings{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "consultations@example.com",
		Password: "secret",
		From:     "consultations@example.com",
	}
}

func testInput() models.SubmissionInput {
	return models.SubmissionInput{
		Email:    "anna@example.com",
		Dates:    []string{"2026-09-14", "2026-10-02"},
		FormData: testForm(),
	}
}

func TestNewMailerRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewMailer(config.MailSettings{Host: "smtp.example.com", Port: 587})
	assert.ErrorIs(t, err, ErrMailNotConfigured)

	m, err := NewMailer(configuredMail())
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestComposeReportHeaders(t *testing.T) {
	t.Parallel()

	cfg := configuredMail()
	cfg.BusinessRecipient = "salon@example.com"
	m, err := NewMailer(cfg)
	require.NoError(t, err)

	msg := m.ComposeReport(testInput(), Resolve(testForm().Profile()), nil, testDates(), "abc-123")

	assert.Equal(t, []string{"Your Hair Consultation Form Submission"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"abc-123"}, msg.GetHeader("X-Consultation-ID"))
	to := msg.GetHeader("To")
	require.Len(t, to, 2)
	assert.Equal(t, "anna@example.com", to[0])
	assert.Equal(t, "salon@example.com", to[1])
}

func TestComposeReportSkipsDuplicateBusinessRecipient(t *testing.T) {
	t.Parallel()

	cfg := configuredMail()
	cfg.BusinessRecipient = "anna@example.com"
	m, err := NewMailer(cfg)
	require.NoError(t, err)

	msg := m.ComposeReport(testInput(), nil, nil, testDates(), "abc-123")
	assert.Equal(t, []string{"anna@example.com"}, msg.GetHeader("To"))
}

func TestComposeReportPairsEveryCidWithAnAttachment(t *testing.T) {
	t.Parallel()

	m, err := NewMailer(configuredMail())
	require.NoError(t, err)

	images := []*ImageAsset{
		{Filename: "mbt1.jpg", MIME: "image/jpeg", Bytes: []byte("img-one")},
		nil,
		{Filename: "mbt3.jpg", MIME: "image/jpeg", Bytes: []byte("img-three")},
	}
	rec := Resolve(testForm().Profile())
	require.NotNil(t, rec)

	msg := m.ComposeReport(testInput(), rec, images, testDates(), "abc-123")

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	// Non-nil assets keep their positional content-ids on both sides.
	for _, cid := range []string{"image_0_mbt1jpg", "image_2_mbt3jpg"} {
		assert.Contains(t, raw, fmt.Sprintf("Content-ID: <%s>", cid))
	}
	// The nil slot contributes neither a reference nor an attachment.
	assert.NotContains(t, raw, "image_1_")

	html := reportHTML(testInput(), rec, []string{"image_0_mbt1jpg", "image_2_mbt3jpg"}, testDates())
	assert.Contains(t, html, `src="cid:image_0_mbt1jpg"`)
	assert.Contains(t, html, `src="cid:image_2_mbt3jpg"`)
}

func TestReportHTMLSectionsAndDates(t *testing.T) {
	t.Parallel()

	input := testInput()
	rec := Resolve(input.FormData.Profile())
	require.NotNil(t, rec)

	html := reportHTML(input, rec, nil, testDates())

	assert.Contains(t, html, "Personal Information")
	assert.Contains(t, html, "Hair Analysis Profile")
	assert.Contains(t, html, "Professional Recommendations")
	assert.Contains(t, html, "Medium Hair Trendy")
	assert.Contains(t, html, "Selected Perfect Hair Days")
	assert.Contains(t, html, "Monday, September 14, 2026")
	assert.Contains(t, html, "Friday, October 2, 2026")
	assert.Contains(t, html, "<strong>Total dates selected:</strong> 2")
	assert.Contains(t, html, "reminder 2 weeks before")
}

func TestReportHTMLEscapesUserInput(t *testing.T) {
	t.Parallel()

	input := testInput()
	input.FormData.FirstName = `<script>alert("x")</script>`

	html := reportHTML(input, nil, nil, testDates())
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestReportHTMLOmitsRecommendationsWhenUnresolved(t *testing.T) {
	t.Parallel()

	html := reportHTML(testInput(), nil, nil, testDates())
	assert.NotContains(t, html, "Professional Recommendations")
}

func TestComposeDatesConfirmation(t *testing.T) {
	t.Parallel()

	m, err := NewMailer(configuredMail())
	require.NoError(t, err)

	dates := []time.Time{
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	}
	msg := m.ComposeDatesConfirmation("anna@example.com", dates)

	assert.Equal(t, []string{"Your Perfect Hair Days Confirmation"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"anna@example.com"}, msg.GetHeader("To"))

	html := datesHTML(dates)
	assert.Contains(t, html, "1. Monday, September 14, 2026")
	assert.Contains(t, html, "2. Friday, October 2, 2026")
	assert.Contains(t, html, "<strong>Total dates selected:</strong> 2")
}
