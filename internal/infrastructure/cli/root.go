// Package cli hosts the cobra surface and the terminal-facing adapters: the
// spinner, the background call runner, and the interactive prompter.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/smsh/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.Assist.Runner = NewRunner()

	root := &cobra.Command{
		Use:           "smsh",
		Short:         "smsh - LLM-powered zsh CLI helper",
		Long:          "smsh turns natural language into zsh commands and explains existing ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompleteCommand(container))
	root.AddCommand(newExplainCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
