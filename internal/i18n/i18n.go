// Package i18n provides internationalization support for the grimoire card service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale returns the first supported language listed in Accept-Language,
// in header order, or DefaultLocale when none is supported.
func GetLocale(c *gin.Context) string {
	for _, part := range strings.Split(c.GetHeader(AcceptLanguageHeader), ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if GetTranslator().Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.unauthorized":           "Unauthorized",
			"error.api_key_required":       "API key is required",
			"error.invalid_api_key":        "Invalid API key",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.timeout":                "Request timed out",
			"error.service_unavailable":    "Service unavailable",
			"error.search.missing_query":   "Missing q or next parameter",
			"error.search.invalid_next":    "Invalid next page token",
			"error.search.missing_prompt":  "Prompt text is required",
			"error.search.upstream_failed": "Card search is unavailable, please try again",
			"error.search.parser_failed":   "Prompt parser is unavailable, please try again",
			"error.image.not_found":        "Card image not found",
			"error.image.unavailable":      "Card image is temporarily unavailable",
			"error.deck.not_found":         "Deck not found",
			"error.deck.invalid_id":        "Invalid deck ID",
			"error.deck.invalid":           "Invalid deck",
		},
		"pt": {
			"error.invalid_request":        "Requisição inválida",
			"error.invalid_request_body":   "Corpo da requisição inválido",
			"error.internal_error":         "Ocorreu um erro inesperado",
			"error.unauthorized":           "Não autorizado",
			"error.api_key_required":       "Chave de API é obrigatória",
			"error.invalid_api_key":        "Chave de API inválida",
			"error.not_found":              "Não encontrado",
			"error.rate_limit_exceeded":    "Muitas requisições, tente novamente mais tarde",
			"error.timeout":                "Tempo de requisição esgotado",
			"error.service_unavailable":    "Serviço indisponível",
			"error.search.missing_query":   "Parâmetro q ou next ausente",
			"error.search.invalid_next":    "Token de próxima página inválido",
			"error.search.missing_prompt":  "O texto do prompt é obrigatório",
			"error.search.upstream_failed": "A busca de cartas está indisponível, tente novamente",
			"error.search.parser_failed":   "O interpretador de prompts está indisponível, tente novamente",
			"error.image.not_found":        "Imagem da carta não encontrada",
			"error.image.unavailable":      "Imagem da carta temporariamente indisponível",
			"error.deck.not_found":         "Deck não encontrado",
			"error.deck.invalid_id":        "ID de deck inválido",
			"error.deck.invalid":           "Deck inválido",
		},
		"nl": {
			"error.invalid_request":        "Ongeldig verzoek",
			"error.invalid_request_body":   "Ongeldige aanvraag body",
			"error.internal_error":         "Er is een onverwachte fout opgetreden",
			"error.unauthorized":           "Niet geautoriseerd",
			"error.api_key_required":       "API-sleutel is vereist",
			"error.invalid_api_key":        "Ongeldige API-sleutel",
			"error.not_found":              "Niet gevonden",
			"error.rate_limit_exceeded":    "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":                "Verzoek is verlopen",
			"error.service_unavailable":    "Dienst niet beschikbaar",
			"error.search.missing_query":   "Parameter q of next ontbreekt",
			"error.search.invalid_next":    "Ongeldig token voor volgende pagina",
			"error.search.missing_prompt":  "Prompttekst is vereist",
			"error.search.upstream_failed": "Kaarten zoeken is niet beschikbaar, probeer het opnieuw",
			"error.search.parser_failed":   "Prompt-parser is niet beschikbaar, probeer het opnieuw",
			"error.image.not_found":        "Kaartafbeelding niet gevonden",
			"error.image.unavailable":      "Kaartafbeelding is tijdelijk niet beschikbaar",
			"error.deck.not_found":         "Deck niet gevonden",
			"error.deck.invalid_id":        "Ongeldig deck-ID",
			"error.deck.invalid":           "Ongeldig deck",
		},
	}
}
