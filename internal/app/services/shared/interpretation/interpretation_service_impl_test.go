package interpretation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"labtrack-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestService(baseUrl string) *geminiService {
	return &geminiService{
		BaseUrl:    baseUrl,
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}
}

func candidateBody(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	return string(body)
}

func TestGeminiService_Interpret(t *testing.T) {
	results := []models.LabResult{
		{Parameter: "HDL", Value: 35, Unit: "mg/dL", Range: ">40", IsAbnormal: true},
		{Parameter: "Total Cholesterol", Value: 180, Unit: "mg/dL", Range: "125–200", IsAbnormal: false},
	}

	t.Run("Successful Answer Is Trimmed", func(t *testing.T) {
		var gotPath, gotPrompt string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			var request generateContentRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			gotPrompt = request.Contents[0].Parts[0].Text
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(candidateBody("  Low HDL suggests cardiovascular risk.\n")))
		}))
		defer server.Close()

		service := newTestService(server.URL)
		answer, err := service.Interpret(context.Background(), results, "Lipid Profile")

		assert.NoError(t, err)
		assert.Equal(t, "Low HDL suggests cardiovascular risk.", answer)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
		assert.Contains(t, gotPrompt, "Lipid Profile")
		assert.Contains(t, gotPrompt, "HDL: 35.00 mg/dL (reference >40) [ABNORMAL]")
		assert.Contains(t, gotPrompt, "[normal]")
	})

	t.Run("Non-2xx Status Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		service := newTestService(server.URL)
		_, err := service.Interpret(context.Background(), results, "Lipid Profile")

		assert.Error(t, err)
	})

	t.Run("Unreachable Provider Is An Error", func(t *testing.T) {
		service := newTestService("http://127.0.0.1:1")
		_, err := service.Interpret(context.Background(), results, "Lipid Profile")

		assert.Error(t, err)
	})

	t.Run("Empty Candidates Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		service := newTestService(server.URL)
		_, err := service.Interpret(context.Background(), results, "Lipid Profile")

		assert.Error(t, err)
	})

	t.Run("Blank Answer Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(candidateBody("   ")))
		}))
		defer server.Close()

		service := newTestService(server.URL)
		_, err := service.Interpret(context.Background(), results, "Lipid Profile")

		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt([]models.LabResult{
		{Parameter: "TSH", Value: 2.1, Unit: "µIU/mL", Range: "0.4–4.0", IsAbnormal: false},
	}, "Thyroid Profile")

	assert.True(t, strings.HasPrefix(prompt, "You are a clinical pathologist."))
	assert.Contains(t, prompt, "Thyroid Profile")
	assert.Contains(t, prompt, "TSH: 2.10 µIU/mL (reference 0.4–4.0) [normal]")
}
