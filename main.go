package main

import (
	"fmt"
	"os"

	"github.com/Origon/StatementParser/cmd/root"
	"github.com/Origon/StatementParser/cmd/serve"
	"github.com/Origon/StatementParser/internal/config"
)

func main() {
	config.LoadEnv()

	root.Cmd.AddCommand(serve.Cmd)
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
