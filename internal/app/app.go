// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"primecheck/internal/cli"
	"primecheck/internal/input"
	"primecheck/internal/logging"
	"primecheck/internal/messages"
	"primecheck/internal/prime"
	"primecheck/internal/version"
	"primecheck/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitNotPrime    = 1 // only with --exit-status
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("primecheck")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintln(outw, version.String())
		return flush(outw, stderr, ExitOK)
	}

	log := logging.New(stderr, logging.Config{Debug: opts.Debug, Quiet: opts.Quiet})

	cat, err := messages.Resolve(opts.Lang, opts.MessagesFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	log.Debug("messages.resolved", "lang", cat.Lang, "file", opts.MessagesFile)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	numbers := opts.Numbers
	if opts.Interactive() {
		n, err := readOne(ctx, stdin, promptWriter(opts, outw, stderr), cat.Prompt, log)
		if err != nil {
			var pe *input.PromptError
			switch {
			case ctx.Err() != nil:
				return ExitInterrupted
			case errors.As(err, &pe):
				if writers.IsBrokenPipe(err) {
					return ExitOK
				}
				_, _ = fmt.Fprintln(stderr, err)
				return ExitWrite
			}
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return ExitUsage
		}
		numbers = []int64{n}
	}

	in, writeErr := writers.StartResultWriter(outw, opts.Output, cat, len(numbers))
	composite := 0
	for _, n := range numbers {
		if ctx.Err() != nil {
			break
		}
		r := prime.Check(n)
		log.Debug("prime.checked", "n", r.N, "prime", r.Prime, "divisor", r.Divisor)
		if !r.Prime {
			composite++
		}
		in <- r
	}
	close(in)

	// A closed pipe ends output early but the verdict still decides the code.
	werr := <-writeErr
	if werr != nil && !writers.IsBrokenPipe(werr) {
		_, _ = fmt.Fprintln(stderr, werr)
		return ExitWrite
	}
	if werr == nil {
		if code := flush(outw, stderr, ExitOK); code != ExitOK {
			return code
		}
	}

	if ctx.Err() != nil {
		return ExitInterrupted
	}
	if opts.ExitStatus && composite > 0 {
		return ExitNotPrime
	}
	return ExitOK
}

// readOne runs the prompt loop. In machine-readable output modes the prompt
// goes to stderr so stdout stays parseable.
func readOne(ctx context.Context, stdin io.Reader, prompt io.Writer, text string, log *slog.Logger) (int64, error) {
	if stdin == nil {
		return 0, input.ErrNoInput
	}
	return input.NewReader(stdin, prompt, text, log).ReadPositive(ctx)
}

func promptWriter(opts cli.Options, outw *bufio.Writer, stderr io.Writer) io.Writer {
	switch {
	case opts.Quiet:
		return nil
	case opts.Output == writers.FormatText:
		return outw
	default:
		return stderr
	}
}

// flush maps a final stdout flush onto an exit code; a closed pipe is not a failure.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return code
}
