package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Gemini Generative Language API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Gemini API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API endpoint (used in tests).
func (c *Client) SetAPIURL(url string) { c.apiURL = url }

// SetModel overrides the default model.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

// Model returns the model being used.
func (c *Client) Model() string { return c.model }

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}

	return &result, nil
}

// ExtractFromImage asks the vision model to pull structured event fields out
// of a flyer or poster image. The image is passed as base64 with its MIME
// type; the caller gets the raw model text back and owns JSON parsing.
func (c *Client) ExtractFromImage(ctx context.Context, mimeType, imageBase64 string) (string, error) {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		SystemInstruction: &Content{
			Parts: []Part{{Text: EventExtractionSystemPrompt}},
		},
		Contents: []Content{
			{
				Role: "user",
				Parts: []Part{
					{Text: EventExtractionUserPrompt},
					{InlineData: &Blob{MIMEType: mimeType, Data: imageBase64}},
				},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature: ExtractionTemperature,
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
