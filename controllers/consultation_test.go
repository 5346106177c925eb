// controllers/consultation_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mkh-consultation-backend/config"
	"mkh-consultation-backend/models"
	"mkh-consultation-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func validInput() models.SubmissionInput {
	future := time.Now().AddDate(0, 0, 20)
	return models.SubmissionInput{
		Email: "anna@example.com",
		Dates: []string{
			future.Format("2006-01-02"),
			future.AddDate(0, 0, 7).Format("2006-01-02"),
		},
		FormData: models.FormData{
			FirstName:         "Anna",
			LastName:          "Larsen",
			Email:             "anna@example.com",
			Phone:             "+4512345678",
			SelectedHairColor: "Blonde",
			HairLength:        "Medium",
			PersonalStyle:     "Trendy",
		},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

// setupEnv points asset loading at throwaway locations and leaves the mail
// transport unconfigured unless a test overrides it.
func setupEnv(t *testing.T) *gin.Engine {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	oldMail, oldAssets, oldSMS := config.Mail, config.Assets, config.SMS
	t.Cleanup(func() {
		config.Mail, config.Assets, config.SMS = oldMail, oldAssets, oldSMS
	})

	config.Mail = config.MailSettings{}
	config.SMS = config.SMSSettings{}
	config.Assets = config.AssetSettings{
		Root:    t.TempDir(),
		BaseURL: server.URL,
	}

	return routes.SetupRouter()
}

func TestSubmitConsultationValidationGate(t *testing.T) {
	r := setupEnv(t)

	past := time.Now().AddDate(0, 0, -5).Format("2006-01-02")

	tests := []struct {
		name   string
		mutate func(*models.SubmissionInput)
	}{
		{"empty email", func(in *models.SubmissionInput) { in.Email = "" }},
		{"malformed email", func(in *models.SubmissionInput) { in.Email = "not-an-email" }},
		{"no dates", func(in *models.SubmissionInput) { in.Dates = nil }},
		{"malformed date", func(in *models.SubmissionInput) { in.Dates = []string{"14-09-2026"} }},
		{"past date", func(in *models.SubmissionInput) { in.Dates = []string{past} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			w := doJSON(t, r, http.MethodPost, "/api/consultations", input)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid request data", errorBody(t, w))
		})
	}
}

func TestSubmitConsultationRejectsNonJSONBody(t *testing.T) {
	r := setupEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/consultations", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitConsultationMailerNotConfigured(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/consultations", validInput())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Email service is not configured. Please contact support.", errorBody(t, w))
}

func TestSubmitConsultationVerifyFailure(t *testing.T) {
	r := setupEnv(t)

	// A freshly closed listener gives a port that refuses connections, so the
	// verification dial fails without timing out.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	config.Mail = config.MailSettings{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "consultations@example.com",
		Password: "secret",
		From:     "consultations@example.com",
	}

	w := doJSON(t, r, http.MethodPost, "/api/consultations", validInput())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Email service is currently unavailable. Please try again later.", errorBody(t, w))
}

func TestDownloadReportStreamsPDF(t *testing.T) {
	r := setupEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/consultations/report", validInput())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "MKH_Hair_Analysis_Anna_Larsen_")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestDownloadReportValidationGate(t *testing.T) {
	r := setupEnv(t)

	input := validInput()
	input.Dates = nil
	w := doJSON(t, r, http.MethodPost, "/api/consultations/report", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestImagesProbe(t *testing.T) {
	r := setupEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/test-images", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Paths  []string `json:"paths"`
		URLs   []string `json:"urls"`
		Inline []string `json:"inline"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Paths, 2)
	assert.Equal(t, "/blonde/short_hair/classic/sbc1.jpg", resp.Paths[0])
	assert.Equal(t, config.Assets.BaseURL+resp.Paths[0], resp.URLs[0])
	assert.Nil(t, resp.Inline, "inline payload only appears when requested")
}

func TestTestImagesProbeInline(t *testing.T) {
	r := setupEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/test-images?inline=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Inline []string `json:"inline"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Assets are unreachable in this environment, so every slot degrades to "".
	require.Len(t, resp.Inline, 2)
	for _, v := range resp.Inline {
		assert.Empty(t, v)
	}
}

func TestHealthCheck(t *testing.T) {
	r := setupEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
