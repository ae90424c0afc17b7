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

type openAIProvider struct {
	model      domain.ModelDefinition
	httpClient *http.Client
	resolver   ports.CredentialResolver
}

func newOpenAIProvider(model domain.ModelDefinition, client *http.Client, resolver ports.CredentialResolver) ports.Provider {
	return &openAIProvider{
		model:      model,
		httpClient: client,
		resolver:   resolver,
	}
}

func (p *openAIProvider) Name() string {
	return "openai"
}

// Call sends one chat-completion request constrained to the structured
// response schema and extracts the nested payload. The content field carries
// the two-field object as a JSON string that must be re-parsed.
func (p *openAIProvider) Call(ctx context.Context, req domain.CallRequest) (string, error) {
	apiKey, ok := p.resolver.Resolve(domain.ProviderOpenAI)
	if !ok {
		return "", errors.New("OpenAI API key not set")
	}

	payload := chatCompletionRequest{
		Model:       p.model.ModelID,
		MaxTokens:   p.model.MaxTokens,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "system", Content: req.Intro},
			{Role: "user", Content: req.Prompt},
		},
		ResponseFormat: chatResponseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchemaEnvelope{
				Name:   "response",
				Strict: true,
				Schema: newResponseSchema(),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("Request failed: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.model.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("Request failed: %v", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("Invalid response: %v", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", fmt.Errorf("API error: %s", decoded.Error.Message)
	}

	content, ok := decoded.FirstContent()
	if !ok {
		return "", errors.New("Missing content in response")
	}

	var structured domain.StructuredResponse
	if err := json.Unmarshal([]byte(content), &structured); err != nil {
		return "", fmt.Errorf("Failed to parse response JSON: %v", err)
	}
	if structured.Error {
		return "", &domain.RefusalError{Message: structured.Result}
	}
	return structured.Result, nil
}

var _ ports.Provider = (*openAIProvider)(nil)
