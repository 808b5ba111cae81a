package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("gemini API key is required")

// ZeroShotResult is a remote zero-shot classification outcome.
type ZeroShotResult struct {
	Category   string `json:"category"`
	Confidence int    `json:"confidence"`
}

// IGemini classifies free text against a caller-supplied label set.
// It is an optional accuracy boost in front of the local pipeline;
// every error path must leave the local classifier as the fallback.
type IGemini interface {
	ClassifyText(ctx context.Context, text string, labels []string) (ZeroShotResult, error)
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
	limiter   *rate.Limiter
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	// Free-tier request budget; anything above falls back locally.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
		limiter:   limiter,
	}, nil
}

func (g *geminiClient) ClassifyText(ctx context.Context, text string, labels []string) (ZeroShotResult, error) {
	if text == "" || len(labels) == 0 {
		return ZeroShotResult{}, errors.New("text and labels are required")
	}

	if !g.limiter.Allow() {
		return ZeroShotResult{}, errors.New("request budget exhausted")
	}

	model := g.client.GenerativeModel(g.modelName)

	prompt := fmt.Sprintf(
		"Classify the following IT helpdesk request into exactly one of these categories: %s.\n"+
			"Respond with JSON only, in the form {\"category\": \"...\", \"confidence\": 0-100}.\n\n"+
			"Request: %s",
		strings.Join(labels, ", "), text,
	)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return ZeroShotResult{}, err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return ZeroShotResult{}, errors.New("no response from Gemini API")
	}

	raw, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return ZeroShotResult{}, errors.New("unexpected response format from Gemini API")
	}

	return parseResult(string(raw), labels)
}

func parseResult(raw string, labels []string) (ZeroShotResult, error) {
	payload := raw
	if start := strings.Index(payload, "{"); start >= 0 {
		if end := strings.LastIndex(payload, "}"); end > start {
			payload = payload[start : end+1]
		}
	}

	var result ZeroShotResult
	if err := jsoniter.UnmarshalFromString(payload, &result); err != nil {
		return ZeroShotResult{}, fmt.Errorf("invalid classification payload: %w", err)
	}

	for _, label := range labels {
		if strings.EqualFold(result.Category, label) {
			result.Category = label
			if result.Confidence < 0 {
				result.Confidence = 0
			}
			if result.Confidence > 100 {
				result.Confidence = 100
			}
			return result, nil
		}
	}

	return ZeroShotResult{}, fmt.Errorf("model returned unknown category %q", result.Category)
}
