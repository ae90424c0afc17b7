package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/ports"
)

// Wire types for the Anthropic messages API. The structured response is
// forced through a single tool call whose input IS the two-field object.

const structuredResponseTool = "structured_response"

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema responseSchema `json:"input_schema"`
}

type anthropicToolChoice struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string              `json:"model"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
	System      string              `json:"system"`
	Messages    []anthropicMessage  `json:"messages"`
	Tools       []anthropicTool     `json:"tools"`
	ToolChoice  anthropicToolChoice `json:"tool_choice"`
}

type anthropicResponse struct {
	Error   *apiError `json:"error"`
	Content []struct {
		Input json.RawMessage `json:"input"`
	} `json:"content"`
}

// FirstInput returns the first content block's tool input object.
func (a anthropicResponse) FirstInput() (json.RawMessage, bool) {
	if len(a.Content) == 0 || len(a.Content[0].Input) == 0 {
		return nil, false
	}
	return a.Content[0].Input, true
}

type anthropicProvider struct {
	model      domain.ModelDefinition
	httpClient *http.Client
	resolver   ports.CredentialResolver
}

func newAnthropicProvider(model domain.ModelDefinition, client *http.Client, resolver ports.CredentialResolver) ports.Provider {
	return &anthropicProvider{
		model:      model,
		httpClient: client,
		resolver:   resolver,
	}
}

func (p *anthropicProvider) Name() string {
	return "claude"
}

// Call sends one messages request with a forced structured-response tool and
// reads the payload directly from the tool call's input object.
func (p *anthropicProvider) Call(ctx context.Context, req domain.CallRequest) (string, error) {
	apiKey, ok := p.resolver.Resolve(domain.ProviderClaude)
	if !ok {
		return "", errors.New("Anthropic API key not set")
	}

	payload := anthropicRequest{
		Model:       p.model.ModelID,
		MaxTokens:   p.model.MaxTokens,
		Temperature: 0,
		System:      req.Intro,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.Prompt},
		},
		Tools: []anthropicTool{
			{
				Name:        structuredResponseTool,
				Description: "Return the structured response",
				InputSchema: newResponseSchema(),
			},
		},
		ToolChoice: anthropicToolChoice{Type: "tool", Name: structuredResponseTool},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("Request failed: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.model.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("Request failed: %v", err)
	}
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("Invalid response: %v", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", fmt.Errorf("API error: %s", decoded.Error.Message)
	}

	input, ok := decoded.FirstInput()
	if !ok {
		return "", errors.New("Missing content in response")
	}

	var structured domain.StructuredResponse
	if err := json.Unmarshal(input, &structured); err != nil {
		return "", fmt.Errorf("Failed to parse response JSON: %v", err)
	}
	if structured.Error {
		return "", &domain.RefusalError{Message: structured.Result}
	}
	return structured.Result, nil
}

var _ ports.Provider = (*anthropicProvider)(nil)
