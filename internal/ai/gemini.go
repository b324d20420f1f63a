package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor implements Advisor using Google's Gemini models.
type GeminiAdvisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAdvisor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiAdvisor(ctx context.Context, apiKey string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiAdvisor{client: client, model: model}, nil
}

func (a *GeminiAdvisor) Close() {
	a.client.Close()
}

const advicePrompt = `You are a ride-booking assistant for an Indian fare-comparison app.
Given a trip and the quoted fares, pick the single best option for a typical rider,
weighing price against comfort (Auto < Go/Mini < Prime/Premier).
Respond with JSON only, in the shape:
{"recommended_type": "<exact quote type>", "reason": "<one short sentence>"}
The recommended_type must be copied verbatim from the quote list.`

// RecommendRide asks the model to choose among the quoted options.
func (a *GeminiAdvisor) RecommendRide(ctx context.Context, pickup, dropoff string, quotes []QuoteSummary) (*Advice, error) {
	quoteJSON, err := json.Marshal(quotes)
	if err != nil {
		return nil, fmt.Errorf("marshal quotes: %w", err)
	}

	fullPrompt := fmt.Sprintf("%s\n\nTrip: %s -> %s\nQuotes: %s", advicePrompt, pickup, dropoff, quoteJSON)

	resp, err := a.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Strip potential markdown fences; JSON mode should prevent them, but
	// the model occasionally emits them anyway.
	cleanJSON := cleanJSONString(responseText.String())

	var advice Advice
	if err := json.Unmarshal([]byte(cleanJSON), &advice); err != nil {
		return nil, fmt.Errorf("parse advice JSON: %w", err)
	}
	if advice.RecommendedType == "" {
		return nil, fmt.Errorf("model returned no recommendation")
	}
	return &advice, nil
}

func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
