// controllers/consultation.go
package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"mkh-consultation-backend/config"
	"mkh-consultation-backend/models"
	"mkh-consultation-backend/services"
	"mkh-consultation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// logoPath is resolved through the image loader like any style image, so the
// header keeps rendering (without a logo) when the asset is missing.
const logoPath = "/mkh-logo.png"

// parseSubmission binds and validates the request body. Validation failures
// return an error before any renderer or transport is touched.
func parseSubmission(c *gin.Context) (models.SubmissionInput, []time.Time, bool) {
	var input models.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request data")
		return input, nil, false
	}

	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request data")
		return input, nil, false
	}
	if len(input.Dates) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request data")
		return input, nil, false
	}

	dates, err := utils.ParseDates(input.Dates)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request data")
		return input, nil, false
	}
	now := time.Now()
	for _, d := range dates {
		if utils.IsPastDay(d, now) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid request data")
			return input, nil, false
		}
	}

	return input, dates, true
}

// SubmitConsultation handles POST /api/consultations. The recommendation is
// resolved once and the same snapshot feeds both the email and any follow-up
// rendering, so the two documents can never disagree.
func SubmitConsultation(c *gin.Context) {
	input, dates, ok := parseSubmission(c)
	if !ok {
		return
	}

	consultationID := uuid.NewString()
	log.Printf("Consultation %s: submission from %s with %d dates", consultationID, input.Email, len(dates))

	mailer, err := services.NewMailer(config.Mail)
	if err != nil {
		log.Printf("Consultation %s: %v", consultationID, err)
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Email service is not configured. Please contact support.")
		return
	}
	if err := mailer.Verify(); err != nil {
		log.Printf("Consultation %s: %v", consultationID, err)
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Email service is currently unavailable. Please try again later.")
		return
	}

	profile := input.FormData.Profile()
	rec := services.Resolve(profile)
	paths := services.RecommendationImages(profile)

	loader := services.NewImageLoader()
	images := loader.LoadAll(paths, services.MaxReportImages)
	processed := 0
	for _, img := range images {
		if img != nil {
			processed++
		}
	}
	log.Printf("Consultation %s: materialized %d/%d images", consultationID, processed, len(paths))

	msg := mailer.ComposeReport(input, rec, images, dates, consultationID)
	if err := mailer.Send(msg); err != nil {
		log.Printf("Consultation %s: %v", consultationID, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send consultation email. Please try again.")
		return
	}

	// Secondary dates-only confirmation. Its failure never rolls back or
	// flags the primary send.
	if input.SendAdditionalEmail {
		confirmation := mailer.ComposeDatesConfirmation(input.Email, dates)
		if err := mailer.Send(confirmation); err != nil {
			log.Printf("Consultation %s: dates confirmation failed: %v", consultationID, err)
		}
	}

	if sms := services.NewSMSService(config.SMS); sms != nil {
		sms.SendDatesConfirmation(input.FormData.Phone, dates)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Consultation submitted successfully",
		"imagesProcessed": processed,
	})
}

// DownloadReport handles POST /api/consultations/report and streams the PDF
// back as an attachment. It shares the validation gate with SubmitConsultation
// but touches no mail transport.
func DownloadReport(c *gin.Context) {
	input, dates, ok := parseSubmission(c)
	if !ok {
		return
	}

	profile := input.FormData.Profile()
	rec := services.Resolve(profile)
	paths := services.RecommendationImages(profile)

	loader := services.NewImageLoader()
	images := loader.LoadAll(paths, services.MaxReportImages)
	logo := loader.Load(logoPath)

	generatedAt := time.Now()
	pdfBytes, err := services.RenderPDF(input.FormData, rec, images, dates, logo, generatedAt)
	if err != nil {
		log.Printf("PDF render failed for %s: %v", input.Email, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF. Please try again.")
		return
	}

	filename := services.ReportFileName(input.FormData.FirstName, input.FormData.LastName, generatedAt)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// TestImages handles GET /api/test-images, a diagnostic probe that resolves a
// fixed profile's image paths. With ?inline=1 each resolvable image is also
// returned as a base64 data-URL, exercising the full materializer path.
func TestImages(c *gin.Context) {
	profile := models.HairProfile{
		HairColor:     "Blonde",
		HairLength:    "Short",
		PersonalStyle: "Classic",
	}
	paths := services.RecommendationImages(profile)

	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = config.Assets.BaseURL + p
	}

	resp := gin.H{
		"profile": profile,
		"paths":   paths,
		"urls":    urls,
	}

	if c.Query("inline") == "1" {
		loader := services.NewImageLoader()
		inline := make([]string, 0, services.MaxReportImages)
		for _, asset := range loader.LoadAll(paths, services.MaxReportImages) {
			if asset == nil {
				inline = append(inline, "")
				continue
			}
			inline = append(inline, asset.DataURL())
		}
		resp["inline"] = inline
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
