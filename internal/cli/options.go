// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"primecheck/internal/cliutil"
	"primecheck/internal/input"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input; empty Numbers means prompt on stdin
	Numbers []int64

	// Messages
	Lang         string
	MessagesFile string

	// Output
	Output     string // text|json|jsonl
	ExitStatus bool

	// Misc
	Quiet   bool
	Debug   bool
	Version bool
}

// Interactive reports whether numbers must be read from stdin.
func (o Options) Interactive() bool { return len(o.Numbers) == 0 }

// ParseArgs registers and parses all flags, returns an Options struct.
// -h/--help yields flag.ErrHelp after printing usage to fs.Output().
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Lang, "lang", "", "message language: vi | en [vi]")
	fs.StringVar(&opt.Lang, "l", "", "alias of --lang")
	fs.StringVar(&opt.MessagesFile, "messages", "", "YAML message catalog override")

	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.ExitStatus, "exit-status", false, "exit 1 when any number is not prime [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress prompt and warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Debug, "debug", false, "debug logging on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)

	for _, a := range posArgs {
		n, err := input.ParseNumber(a)
		if err != nil {
			return opt, err
		}
		if n <= 0 {
			return opt, fmt.Errorf("%d is not a positive integer", n)
		}
		opt.Numbers = append(opt.Numbers, n)
	}

	opt.Lang = strings.ToLower(strings.TrimSpace(opt.Lang))
	return opt, Validate(opt)
}

// Validate applies CLI invariants that do not need the filesystem.
func Validate(o Options) error {
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	switch o.Lang {
	case "", "vi", "en":
	default:
		return fmt.Errorf("invalid --lang %q", o.Lang)
	}
	if o.Quiet && o.Debug {
		return errors.New("--quiet conflicts with --debug")
	}
	return nil
}
