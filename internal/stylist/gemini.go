package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sikawofie/shop-backend/pkg/config"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
)

// GeminiClient calls the generateContent endpoint of the Gemini REST API.
// One request, one response: no retry, no streaming. The service layer maps
// every failure to canned text, so errors here only need to be loggable.
type GeminiClient struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
}

// NewGeminiClient builds the client. A nil httpClient falls back to a default
// client bound to the configured timeout.
func NewGeminiClient(cfg config.GeminiConfig, httpClient *http.Client) *GeminiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &GeminiClient{cfg: cfg, httpClient: httpClient}
}

// Configured reports whether an API key is present.
func (c *GeminiClient) Configured() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the assembled prompt and returns the first
// candidate's text.
func (c *GeminiClient) GenerateContent(ctx context.Context, input GenerateInput) (string, error) {
	if !c.Configured() {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "gemini api key missing")
	}
	if strings.TrimSpace(input.Query) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query is required")
	}

	payload := geminiRequest{
		Contents: make([]geminiContent, 0, len(input.History)+1),
	}
	if input.SystemInstruction != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: input.SystemInstruction}},
		}
	}
	for _, turn := range input.History {
		payload.Contents = append(payload.Contents, geminiContent{
			Role:  mapRole(turn.Role),
			Parts: []geminiPart{{Text: turn.Content}},
		})
	}
	payload.Contents = append(payload.Contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: input.Query}},
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal generate request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build generate request")
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels only as a header and is never echoed into errors.
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate request failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, res.Body)
		return "", pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("generate request returned status %d", res.StatusCode))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode generate response")
	}

	var out strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, part := range parsed.Candidates[0].Content.Parts {
			out.WriteString(part.Text)
		}
	}
	return out.String(), nil
}

// mapRole converts chat-widget role tags to the wire roles Gemini expects.
func mapRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "ai", "assistant", "model":
		return "model"
	default:
		return "user"
	}
}
