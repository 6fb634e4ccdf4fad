package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateWithoutKeyPassesThrough(t *testing.T) {
	svc := NewTranslateService("", "http://unused.invalid")

	body, err := svc.Translate(context.Background(), "안녕하세요", "")
	require.NoError(t, err)

	var result TranslationResult
	require.NoError(t, json.Unmarshal(body, &result))
	require.Len(t, result.Translations, 1)
	assert.Equal(t, "안녕하세요", result.Translations[0].Text)
}

func TestTranslateForwardsToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "DeepL-Auth-Key test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "hello", r.PostForm.Get("text"))
		assert.Equal(t, "JA", r.PostForm.Get("target_lang"))

		w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"こんにちは"}]}`))
	}))
	defer upstream.Close()

	svc := NewTranslateService("test-key", upstream.URL)

	body, err := svc.Translate(context.Background(), "hello", "")
	require.NoError(t, err)

	// The upstream body is relayed verbatim, extra fields included
	assert.JSONEq(t,
		`{"translations":[{"detected_source_language":"EN","text":"こんにちは"}]}`,
		string(body))
}

func TestTranslateHonorsTargetLang(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "DE", r.PostForm.Get("target_lang"))
		w.Write([]byte(`{"translations":[{"text":"hallo"}]}`))
	}))
	defer upstream.Close()

	svc := NewTranslateService("test-key", upstream.URL)

	_, err := svc.Translate(context.Background(), "hello", "DE")
	require.NoError(t, err)
}

func TestTranslateUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := NewTranslateService("test-key", upstream.URL)

	_, err := svc.Translate(context.Background(), "hello", "")
	assert.Error(t, err)
}
