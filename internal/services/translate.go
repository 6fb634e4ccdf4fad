package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultTargetLang = "JA"

// Translation is a single translated segment in the upstream response
type Translation struct {
	Text string `json:"text"`
}

// TranslationResult mirrors the upstream response shape, used for the
// keyless pass-through.
type TranslationResult struct {
	Translations []Translation `json:"translations"`
}

// TranslateService proxies text to the DeepL translation API. Without
// an API key it degrades to returning the input unchanged in the same
// response shape.
type TranslateService struct {
	apiKey string
	url    string
	client *http.Client
}

// NewTranslateService creates a new translate service
func NewTranslateService(apiKey, upstreamURL string) *TranslateService {
	return &TranslateService{
		apiKey: apiKey,
		url:    upstreamURL,
		client: &http.Client{},
	}
}

// Translate forwards text to the upstream and returns the upstream
// response body verbatim. With no key configured, the original text is
// wrapped in the upstream's shape instead.
func (s *TranslateService) Translate(ctx context.Context, text, targetLang string) ([]byte, error) {
	if targetLang == "" {
		targetLang = defaultTargetLang
	}

	if s.apiKey == "" {
		body, err := json.Marshal(TranslationResult{
			Translations: []Translation{{Text: text}},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode pass-through response: %w", err)
		}
		return body, nil
	}

	form := url.Values{
		"text":        {text},
		"target_lang": {targetLang},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return body, nil
}
