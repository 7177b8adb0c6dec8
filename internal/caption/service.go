package caption

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quickagent/quickagent/internal/config"
	"github.com/quickagent/quickagent/internal/gemini"
	"github.com/quickagent/quickagent/internal/models"
	"github.com/quickagent/quickagent/internal/ollama"
	"github.com/quickagent/quickagent/internal/openai"
	"github.com/quickagent/quickagent/internal/providers"
)

// ErrNotConfigured indicates the selected provider is missing a required
// credential. Callers should report it as a client error without any
// outbound call having been made.
var ErrNotConfigured = errors.New("caption provider not configured")

// fallbackCaption is returned when the provider produces no content
const fallbackCaption = "Great deal available now!"

// maxFieldLen caps the length of a single embedded product field
const maxFieldLen = 200

// Service generates marketing captions from structured product fields
type Service struct {
	provider  providers.Provider
	model     string
	configErr error
}

// New builds a Service for the provider selected in cfg
func New(cfg *config.Config) *Service {
	c := cfg.Caption
	switch c.Provider {
	case "gemini":
		s := &Service{provider: gemini.New(c.GeminiAPIKey), model: c.GeminiModel}
		if c.GeminiAPIKey == "" {
			s.configErr = fmt.Errorf("%w: Missing GEMINI_API_KEY", ErrNotConfigured)
		}
		return s
	case "ollama":
		return &Service{provider: ollama.New(c.OllamaURL), model: c.OllamaModel}
	default:
		s := &Service{provider: openai.New(c.OpenAIAPIKey), model: c.OpenAIModel}
		if c.OpenAIAPIKey == "" {
			s.configErr = fmt.Errorf("%w: Missing OPENAI_API_KEY", ErrNotConfigured)
		}
		return s
	}
}

// Generate produces a caption for the given request. When req.Lang is "lg"
// a second call translates the caption into Luganda; a translation failure
// keeps the untranslated caption and never fails the request.
func (s *Service) Generate(ctx context.Context, req models.CaptionRequest) (string, error) {
	if s.configErr != nil {
		return "", s.configErr
	}

	if req.Title == "" {
		req.Title = "product"
	}

	text, err := s.provider.Complete(ctx, providers.Config{
		Model:       s.model,
		Temperature: 0.7,
		Prompt:      buildPrompt(req),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate caption: %w", err)
	}

	result := strings.TrimSpace(text)
	if result == "" {
		result = fallbackCaption
	}

	if req.Lang == "lg" {
		translated, err := s.provider.Complete(ctx, providers.Config{
			Model:       s.model,
			Temperature: 0.6,
			Prompt:      buildTranslationPrompt(result),
		})
		if err != nil {
			slog.Warn("Luganda translation failed, keeping untranslated caption", "err", err)
		} else if t := strings.TrimSpace(translated); t != "" {
			result = t
		}
	}

	return result, nil
}

func buildPrompt(req models.CaptionRequest) string {
	return fmt.Sprintf(`Write a high-converting social caption for Facebook Marketplace for an item called "%s". Add bullet benefits, a short CTA, hashtags for Uganda, and include this line with phone/username: Phone: %s %s. Price: UGX %s. Keep it under 120 words.`,
		sanitizeField(req.Title), sanitizeField(req.Phone), sanitizeField(req.Username), sanitizeField(req.Price))
}

func buildTranslationPrompt(caption string) string {
	return "Translate this marketing caption into Luganda with natural wording for a Kampala audience. Keep emojis/formatting if useful:\n\n" + caption
}

var fieldReplacer = strings.NewReplacer("\r", " ", "\n", " ", `"`, "")

// sanitizeField flattens user-supplied fields before embedding them in the
// prompt so line breaks or quotes cannot break out of the template.
func sanitizeField(s string) string {
	s = strings.TrimSpace(fieldReplacer.Replace(s))
	if runes := []rune(s); len(runes) > maxFieldLen {
		s = string(runes[:maxFieldLen])
	}
	return s
}
