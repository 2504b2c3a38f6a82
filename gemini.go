package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const wordListPrompt = `Propose %d words for a word search puzzle on the theme "%s".

Rules:
- Respond ONLY with a JSON array of strings, no commentary and no markdown.
- Single words only: letters a-z, no spaces, hyphens, digits or accents.
- Each word between 3 and 12 letters.
- All words lowercase.`

// GenerateWordList asks Gemini for themed puzzle words and returns them
// normalized, in response order.
func (g *GeminiClient) GenerateWordList(ctx context.Context, theme string, count int) ([]string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(wordListPrompt, count, theme)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.4)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse word list JSON: %w\nraw response: %s", err, text)
	}

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = normalizeWord(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("gemini returned no usable words for theme %q", theme)
	}
	return words, nil
}
