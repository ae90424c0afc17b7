package ai

// responseSchema declares the JSON schema both providers are constrained to
// emit: exactly a result string and an error flag, nothing else. Enforcement
// happens upstream via the request-time declaration; the client only checks
// presence when decoding.
type responseSchema struct {
	Type                 string                    `json:"type"`
	Properties           map[string]schemaProperty `json:"properties"`
	Required             []string                  `json:"required"`
	AdditionalProperties bool                      `json:"additionalProperties"`
}

type schemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func newResponseSchema() responseSchema {
	return responseSchema{
		Type: "object",
		Properties: map[string]schemaProperty{
			"result": {
				Type:        "string",
				Description: "The command or explanation",
			},
			"error": {
				Type:        "boolean",
				Description: "Set to true if the request is unclear, impossible, or not a valid shell task",
			},
		},
		Required:             []string{"result", "error"},
		AdditionalProperties: false,
	}
}
