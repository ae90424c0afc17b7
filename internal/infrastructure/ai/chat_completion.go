package ai

// Wire types for the OpenAI chat-completions API.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type jsonSchemaEnvelope struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema responseSchema `json:"schema"`
}

type chatResponseFormat struct {
	Type       string             `json:"type"`
	JSONSchema jsonSchemaEnvelope `json:"json_schema"`
}

type chatCompletionRequest struct {
	Model          string             `json:"model"`
	MaxTokens      int                `json:"max_tokens"`
	Temperature    float64            `json:"temperature"`
	Messages       []chatMessage      `json:"messages"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

// apiError is the error object both providers embed in failing bodies.
type apiError struct {
	Message string `json:"message"`
}

type chatCompletionResponse struct {
	Error   *apiError `json:"error"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// FirstContent returns the first choice's message content. The structured
// payload arrives as a JSON string nested inside it.
func (c chatCompletionResponse) FirstContent() (string, bool) {
	if len(c.Choices) == 0 || c.Choices[0].Message.Content == "" {
		return "", false
	}
	return c.Choices[0].Message.Content, true
}
