// Package suggest calls the Gemini API to turn show history into a
// scheduling suggestion.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// MinShowHistoryLen is the minimum length of the show history text. Anything
// shorter does not carry enough signal to analyze, and we refuse to spend an
// API call on it.
const MinShowHistoryLen = 50

var (
	ErrHistoryTooShort = fmt.Errorf("show history must be at least %d characters", MinShowHistoryLen)
	ErrEmptyResponse   = errors.New("model returned no candidates")
)

// Suggestion is the structured answer: what to schedule and why.
type Suggestion struct {
	Suggestion string `json:"suggestion"`
	Reasoning  string `json:"reasoning"`
}

type Client struct {
	svc     *generativelanguage.Service
	model   string
	timeout time.Duration
}

// New creates a Gemini client with API key auth. The model is a short name
// like "gemini-2.0-flash"; the API resource prefix is added here.
func New(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing API key")
	}
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("generative language service: %w", err)
	}
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}
	return &Client{svc: svc, model: model, timeout: timeout}, nil
}

// SuggestOptimalSchedule analyzes past show data and suggests when to book
// the next shows. The history must clear MinShowHistoryLen before any
// request is made.
func (c *Client) SuggestOptimalSchedule(ctx context.Context, showHistory string) (Suggestion, error) {
	if len(strings.TrimSpace(showHistory)) < MinShowHistoryLen {
		return Suggestion{}, ErrHistoryTooShort
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: buildPrompt(showHistory)}},
			},
		},
	}

	resp, err := c.svc.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return Suggestion{}, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return Suggestion{}, ErrEmptyResponse
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	slog.DebugContext(ctx, "Received schedule suggestion", "model", c.model, "chars", len(text))
	return parseSuggestion(text), nil
}

func buildPrompt(showHistory string) string {
	var b strings.Builder
	b.WriteString("You are an assistant that analyzes comedy show data and suggests optimal scheduling times.\n\n")
	b.WriteString("Analyze the following show history data to identify patterns and suggest the best time to schedule future shows to maximize attendance and profitability.\n\n")
	b.WriteString("Show History Data:\n")
	b.WriteString(showHistory)
	b.WriteString("\n\nConsider factors such as day of the week, time of day, location, and performer popularity.\n\n")
	b.WriteString("Answer in exactly two sections:\n")
	b.WriteString("SUGGESTION: a clear suggestion for the optimal scheduling time.\n")
	b.WriteString("REASONING: the factors behind the suggestion.\n")
	return b.String()
}

// parseSuggestion splits the model output into its SUGGESTION and REASONING
// sections. Output that ignores the requested format becomes the suggestion
// as a whole, with empty reasoning.
func parseSuggestion(text string) Suggestion {
	const (
		suggestionMarker = "SUGGESTION:"
		reasoningMarker  = "REASONING:"
	)

	si := strings.Index(text, suggestionMarker)
	ri := strings.Index(text, reasoningMarker)
	if si < 0 {
		return Suggestion{Suggestion: strings.TrimSpace(text)}
	}

	start := si + len(suggestionMarker)
	if ri < 0 {
		return Suggestion{Suggestion: strings.TrimSpace(text[start:])}
	}
	if ri < start {
		// REASONING before SUGGESTION: take each section up to the other marker.
		reasoning := strings.TrimSpace(text[ri+len(reasoningMarker) : si])
		return Suggestion{
			Suggestion: strings.TrimSpace(text[start:]),
			Reasoning:  reasoning,
		}
	}
	return Suggestion{
		Suggestion: strings.TrimSpace(text[start:ri]),
		Reasoning:  strings.TrimSpace(text[ri+len(reasoningMarker):]),
	}
}
