package main

import (
	"fmt"
	"os"

	"github.com/laurenhamel/plugin-node-tab/internal/cli"
	"github.com/laurenhamel/plugin-node-tab/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
