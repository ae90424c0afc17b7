package services

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/doeshing/smsh/internal/domain"
)

// Fixed per-operation instructions. The error-flag convention in the complete
// intro is what lets the dispatcher tell a refusal from a command.
const (
	completeIntro = "Generate a zsh command. Use only ASCII characters (straight quotes, no curly quotes). " +
		"If the request is unclear or not a valid shell task, set error=true and put an explanation in result."
	explainIntro = "Explain zsh commands. Return a short, single-line explanation in the result field."
)

// BuildCompleteRequest assembles the call payload for the complete operation.
// With a non-empty buffer the prompt asks the model to alter that buffer to
// satisfy the query; otherwise the prompt is the query verbatim.
func BuildCompleteRequest(buffer, query string) domain.CallRequest {
	prompt := query
	if buffer != "" {
		prompt = fmt.Sprintf("Alter zsh command `%s` to comply with query `%s`", buffer, query)
	}
	return domain.CallRequest{
		Intro:  joinIntro(completeIntro, osContext()),
		Prompt: prompt,
	}
}

// BuildExplainRequest assembles the call payload for the explain operation;
// the prompt is the command buffer verbatim.
func BuildExplainRequest(buffer string) domain.CallRequest {
	return domain.CallRequest{
		Intro:  joinIntro(explainIntro, osContext()),
		Prompt: buffer,
	}
}

func osContext() string {
	return osContextFor(runtime.GOOS)
}

// osContextFor returns the intro clause describing the host OS, or empty for
// systems the prompt does not mention.
func osContextFor(goos string) string {
	switch goos {
	case "darwin":
		return "The target system is macOS."
	case "linux":
		return "The target system is Linux."
	default:
		return ""
	}
}

func joinIntro(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
