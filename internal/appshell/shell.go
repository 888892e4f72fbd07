package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by app entrypoints.
type RunFunc func(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int

// Main wires process stdio and signals into run and exits with its code.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Exec is Main without os.Exit.
func Exec(run RunFunc, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdin, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
