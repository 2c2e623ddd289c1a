package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacoelho/ebar/internal/cli"
)

func main() {
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	result.Print()
	return result.ExitCode
}
