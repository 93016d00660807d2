package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gridwell.xyz/asset-health-service/pkg/common"
)

// Client is the narrative-analysis capability the engine consults for
// diagnostic enrichment. Implementations must honor ctx cancellation;
// callers treat any error as "analysis unavailable".
type Client interface {
	Complete(ctx context.Context, systemInstruction string, userPayload string) (string, error)
}

// HTTPClient talks to an OpenAI-compatible chat-completions endpoint.
type HTTPClient struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration

	httpClient *http.Client
}

const defaultAdvisorTimeout = 30 * time.Second

func NewHTTPClientFromEnv() *HTTPClient {
	baseURL := os.Getenv(common.EnvKeyAdvisorBaseURL)
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}

	model := os.Getenv(common.EnvKeyAdvisorModel)
	if model == "" {
		model = "llama3"
	}

	timeout := defaultAdvisorTimeout
	if raw := os.Getenv(common.EnvKeyAdvisorTimeout); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return &HTTPClient{
		BaseURL:    baseURL,
		Model:      model,
		APIKey:     os.Getenv(common.EnvKeyAdvisorAPIKey),
		Timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *HTTPClient) Complete(ctx context.Context, systemInstruction string, userPayload string) (string, error) {
	logger := common.GetLoggerWith(common.LoggerNameAdvisorClient)

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: userPayload},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	httpClient := c.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultAdvisorTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Warn("advisor request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("advisor returned non-200",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return "", fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("advisor returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
