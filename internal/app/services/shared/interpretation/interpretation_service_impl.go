package interpretation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"labtrack-service/internal/app/config"
	"labtrack-service/internal/app/contracts"
	"labtrack-service/internal/app/models"
	"labtrack-service/internal/pkg/constvars"
	"labtrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	interpretationServiceInstance contracts.InterpretationService
	onceInterpretationService     sync.Once
)

type geminiService struct {
	BaseUrl    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewGeminiService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.InterpretationService {
	onceInterpretationService.Do(func() {
		timeout := time.Duration(internalConfig.Interpretation.TimeoutInSeconds) * time.Second
		interpretationServiceInstance = &geminiService{
			BaseUrl:    internalConfig.Interpretation.BaseUrl,
			APIKey:     internalConfig.Interpretation.APIKey,
			Model:      internalConfig.Interpretation.Model,
			HTTPClient: &http.Client{Timeout: timeout},
			Limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(internalConfig.Interpretation.MaxPerMinute)), internalConfig.Interpretation.MaxPerMinute),
			Log:        logger,
		}
	})
	return interpretationServiceInstance
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *geminiService) Interpret(ctx context.Context, results []models.LabResult, testName string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("geminiService.Interpret called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestNameKey, testName),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrInterpretationUnavailable(err)
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: buildPrompt(results, testName)}}},
		},
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.BaseUrl, s.Model, s.APIKey)
	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrInterpretationRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	httpResponse, err := s.HTTPClient.Do(httpRequest)
	if err != nil {
		s.Log.Warn("geminiService.Interpret provider unreachable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrInterpretationUnavailable(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return "", exceptions.ErrInterpretationStatus(nil, httpResponse.StatusCode)
	}

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", exceptions.ErrInterpretationRequest(err)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", exceptions.ErrInterpretationEmptyAnswer(nil)
	}

	answer := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if answer == "" {
		return "", exceptions.ErrInterpretationEmptyAnswer(nil)
	}

	s.Log.Info("geminiService.Interpret succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return answer, nil
}

func buildPrompt(results []models.LabResult, testName string) string {
	var sb strings.Builder
	sb.WriteString("You are a clinical pathologist. Summarize the following ")
	sb.WriteString(testName)
	sb.WriteString(" results in two or three sentences for the referring physician. Flag abnormal values.\n")
	for _, result := range results {
		flag := "normal"
		if result.IsAbnormal {
			flag = "ABNORMAL"
		}
		sb.WriteString(fmt.Sprintf("%s: %.2f %s (reference %s) [%s]\n",
			result.Parameter, result.Value, result.Unit, result.Range, flag))
	}
	return sb.String()
}
