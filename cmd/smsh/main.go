package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/smsh/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = root.ExecuteContext(ctx)
	if err != nil && !cli.IsExitError(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(cli.ExitCode(err))
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("SMSH_DEBUG"), "1") || strings.EqualFold(os.Getenv("SMSH_DEBUG"), "true")
}
