package domain

import "errors"

// CallRequest is the transient payload for one provider call: a system-level
// instruction and the user content. It is built per invocation and discarded
// after the HTTP exchange completes.
type CallRequest struct {
	Intro  string
	Prompt string
}

// StructuredResponse is the two-field object both providers are constrained
// to emit via their structured-output features. Absent keys decode to the
// zero values, never an error.
type StructuredResponse struct {
	Result string `json:"result"`
	Error  bool   `json:"error"`
}

// RefusalError marks a well-formed response whose error flag was set: the
// model understood the request but declined to produce a command. Message is
// the model's own explanation, not an infrastructure diagnostic.
type RefusalError struct {
	Message string
}

func (e *RefusalError) Error() string {
	return e.Message
}

// AsRefusal extracts a model-declared refusal from err, if it carries one.
func AsRefusal(err error) (*RefusalError, bool) {
	var refusal *RefusalError
	if errors.As(err, &refusal) {
		return refusal, true
	}
	return nil, false
}
