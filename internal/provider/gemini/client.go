package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

const imagePrompt = "Analyze the food items in this image. For each item, estimate its quantity. " +
	"Provide the total nutritional breakdown for the entire meal for these nutrients: calories, protein, fat, and fiber. " +
	"Also, provide a short, encouraging summary message. Respond in the requested JSON format."

const textPromptFormat = "Analyze the food items in this description: %q. For each item, estimate its quantity if not specified. " +
	"Provide the total nutritional breakdown for the entire meal for these nutrients: calories, protein, fat, and fiber. " +
	"Also, provide a short, encouraging summary message. Respond in the requested JSON format."

// responseSchema constrains the model output to the meal analysis shape.
var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"foods": map[string]any{
			"type":        "ARRAY",
			"description": "List of recognized food items.",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"name":     map[string]any{"type": "STRING", "description": "Name of the food item."},
					"quantity": map[string]any{"type": "STRING", "description": "Estimated quantity (e.g., 1 cup, 100g)."},
				},
				"required": []string{"name", "quantity"},
			},
		},
		"totalNutrients": map[string]any{
			"type":        "OBJECT",
			"description": "Total nutritional values for the entire meal.",
			"properties": map[string]any{
				"calories": map[string]any{"type": "NUMBER", "description": "Total calories (kcal)."},
				"protein":  map[string]any{"type": "NUMBER", "description": "Total protein in grams."},
				"fat":      map[string]any{"type": "NUMBER", "description": "Total fat in grams."},
				"fiber":    map[string]any{"type": "NUMBER", "description": "Total fiber in grams."},
			},
			"required": []string{"calories", "protein", "fat", "fiber"},
		},
		"summary": map[string]any{
			"type":        "STRING",
			"description": "A short, encouraging summary message about the meal's nutritional profile.",
		},
	},
	"required": []string{"foods", "totalNutrients", "summary"},
}

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// AnalyzeImage sends a meal photo for analysis. The request runs to
// completion or failure; failures are never retried here.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (model.MealAnalysisResult, error) {
	parts := []part{
		{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
		{Text: imagePrompt},
	}
	return c.generate(ctx, parts)
}

// AnalyzeText sends a free-text meal description for analysis.
func (c *Client) AnalyzeText(ctx context.Context, description string) (model.MealAnalysisResult, error) {
	parts := []part{{Text: fmt.Sprintf(textPromptFormat, description)}}
	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []part) (model.MealAnalysisResult, error) {
	var zero model.MealAnalysisResult
	if strings.TrimSpace(c.APIKey) == "" {
		return zero, fmt.Errorf("missing Gemini API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	mdl := strings.TrimSpace(c.Model)
	if mdl == "" {
		mdl = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		},
	})
	if err != nil {
		return zero, fmt.Errorf("marshal Gemini payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, mdl, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return zero, fmt.Errorf("create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("execute Gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read Gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, fmt.Errorf("Gemini request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return zero, fmt.Errorf("decode Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return zero, fmt.Errorf("empty Gemini response")
	}

	jsonText := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	var result model.MealAnalysisResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return zero, fmt.Errorf("decode meal analysis: %w", err)
	}
	return result, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
}
