//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      "error.invalid_request",
			locale:   "en",
			expected: "Invalid request",
		},
		{
			name:     "portuguese message",
			key:      "error.invalid_request",
			locale:   "pt",
			expected: "Requisição inválida",
		},
		{
			name:     "dutch message",
			key:      "error.invalid_request",
			locale:   "nl",
			expected: "Ongeldig verzoek",
		},
		{
			name:     "empty locale defaults to english",
			key:      "error.invalid_request",
			locale:   "",
			expected: "Invalid request",
		},
		{
			name:     "unsupported locale falls back to english",
			key:      "error.invalid_request",
			locale:   "fr",
			expected: "Invalid request",
		},
		{
			name:     "deck message in portuguese",
			key:      ErrKeyDeckNotFound,
			locale:   "pt",
			expected: "Deck não encontrado",
		},
		{
			name:     "search message in dutch",
			key:      ErrKeyMissingQuery,
			locale:   "nl",
			expected: "Parameter q of next ontbreekt",
		},
		{
			name:     "unknown key returns key",
			key:      "unknown.key",
			locale:   "en",
			expected: "unknown.key",
		},
		{
			name:     "unknown key in unsupported locale falls back",
			key:      "unknown.key",
			locale:   "fr",
			expected: "unknown.key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := translator.Translate(tt.key, tt.locale)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{
			name:           "no header returns default",
			acceptLanguage: "",
			expected:       DefaultLocale,
		},
		{
			name:           "english header",
			acceptLanguage: "en",
			expected:       "en",
		},
		{
			name:           "portuguese header",
			acceptLanguage: "pt",
			expected:       "pt",
		},
		{
			name:           "dutch header",
			acceptLanguage: "nl",
			expected:       "nl",
		},
		{
			name:           "full locale with region",
			acceptLanguage: "en-US",
			expected:       "en",
		},
		{
			name:           "multiple languages",
			acceptLanguage: "en-US,en;q=0.9,pt;q=0.8",
			expected:       "en",
		},
		{
			name:           "skips unsupported languages",
			acceptLanguage: "fr-FR,fr;q=0.9,pt-BR;q=0.8",
			expected:       "pt",
		},
		{
			name:           "unsupported language defaults",
			acceptLanguage: "fr",
			expected:       DefaultLocale,
		},
		{
			name:           "case insensitive",
			acceptLanguage: "EN",
			expected:       "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			result := GetLocale(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTranslator_Supports(t *testing.T) {
	translator := NewTranslator()

	assert.True(t, translator.Supports("en"))
	assert.True(t, translator.Supports("nl"))
	assert.False(t, translator.Supports("fr"))
	assert.False(t, translator.Supports(""))
}

func TestMessages_AllLocalesComplete(t *testing.T) {
	messages := getDefaultMessages()
	english := messages[DefaultLocale]
	for locale, localeMessages := range messages {
		for key := range english {
			assert.Contains(t, localeMessages, key, "locale %s missing %s", locale, key)
		}
	}
}
