package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/smsh/internal/app"
	"github.com/doeshing/smsh/internal/version"
)

func newCompleteCommand(container *app.Container) *cobra.Command {
	var (
		buffer string
		query  string
	)

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Generate a zsh command from a query or modify an existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("query") {
				prompted, err := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).ReadQuery()
				if err != nil {
					return err
				}
				query = prompted
			}
			if query == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Completion aborted (empty input).")
				return nil
			}

			outcome, err := container.Assist.Complete(cmd.Context(), buffer, query)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Stdout)
			return NewExitError(outcome.ExitCode)
		},
	}

	cmd.Flags().StringVarP(&buffer, "buffer", "b", "", "Existing command line to alter")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Natural language query (interactive prompt if omitted)")
	return cmd
}

func newExplainCommand(container *app.Container) *cobra.Command {
	var buffer string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain the current zsh command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if buffer == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to explain.")
				return nil
			}

			outcome, err := container.Assist.Explain(cmd.Context(), buffer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Stdout)
			return NewExitError(outcome.ExitCode)
		},
	}

	cmd.Flags().StringVarP(&buffer, "buffer", "b", "", "Command line to explain")
	return cmd
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := container.Doctor.Run()
			for _, check := range report.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s - %s\n",
					strings.ToUpper(string(check.Status)),
					check.Name,
					check.Details)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show smsh version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "smsh version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
			}
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
