// Package translation calls the external translation service.
package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	placeapp "github.com/koreat/backend/internal/application/place"
	"github.com/koreat/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxResponseSize limits the response body size
const maxResponseSize = 1 * 1024 * 1024 // 1MB max response

// Ensure DeepLClient implements Translator
var _ placeapp.Translator = (*DeepLClient)(nil)

// DeepLClient translates text through the DeepL REST API
type DeepLClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDeepLClient creates a translation client from configuration
func NewDeepLClient(cfg config.TranslationConfig, logger *zap.Logger) *DeepLClient {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &DeepLClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate renders text from sourceLang into targetLang.
// Language codes follow the service's convention (KO, EN, ...).
func (c *DeepLClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	form := url.Values{}
	form.Set("auth_key", c.apiKey)
	form.Set("text", text)
	form.Set("source_lang", strings.ToUpper(sourceLang))
	form.Set("target_lang", strings.ToUpper(targetLang))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read translation response: %w", err)
	}

	c.logger.Debug("Translation request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(parsed.Translations) == 0 {
		return "", fmt.Errorf("translation response carries no translations")
	}

	return parsed.Translations[0].Text, nil
}
