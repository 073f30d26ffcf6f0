package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client wraps the Gemini API for the two generation phases: structured
// concept generation and per-concept image rendering.
type Client struct {
	client       *genai.Client
	conceptModel string
	imageModel   string
}

// New creates a Gemini client.
func New(ctx context.Context, apiKey, conceptModel, imageModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:       client,
		conceptModel: conceptModel,
		imageModel:   imageModel,
	}, nil
}

// designsSchema constrains the concept response to a JSON object holding a
// "designs" array of {title, description} entries.
var designsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"designs": {
			Type:        genai.TypeArray,
			Description: "An array of 5 unique souvenir design concepts.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title": {
						Type:        genai.TypeString,
						Description: "A short, catchy title for the design concept.",
					},
					"description": {
						Type:        genai.TypeString,
						Description: "A short, exciting description of the design, infused with Korean culture.",
					},
				},
				Required: []string{"title", "description"},
			},
		},
	},
	Required: []string{"designs"},
}

// GenerateConcepts sends the concept prompt and returns the raw JSON text of
// the response. Parsing and shape validation are the caller's concern so
// malformed output can be categorized there.
func (c *Client) GenerateConcepts(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   designsSchema,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.conceptModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("concept request failed: %w", err)
	}

	return resp.Text(), nil
}

// GenerateImage renders one image for the given prompt, optionally seeded
// with a PNG reference image. It returns the bytes of the first
// inline-image part of the response; a response without one is a failure.
func (c *Client) GenerateImage(ctx context.Context, prompt string, reference []byte) ([]byte, string, error) {
	parts := []*genai.Part{{Text: prompt}}
	if len(reference) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/png", Data: reference},
		})
	}

	contents := []*genai.Content{{Parts: parts, Role: genai.RoleUser}}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, contents, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("image request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, "", fmt.Errorf("empty image response")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, part.InlineData.MIMEType, nil
		}
	}

	return nil, "", fmt.Errorf("no image data in response")
}
