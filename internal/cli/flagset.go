// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"primecheck/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the primecheck usage block.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs.Output(), name, fs) }
	return fs
}

func printUsage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – primality checker\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s [flags]          prompt for a positive integer on stdin\n", name)
	fmt.Fprintf(out, "  %s [flags] N [N…]   check each N without prompting\n", name)

	fmt.Fprintln(out, "\nMessages:")
	fmt.Fprintln(out, "  -l, --lang string           Message language: vi | en [vi]")
	fmt.Fprintln(out, "      --messages file         YAML catalog (lang, prompt, prime, not_prime)")

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --exit-status           Exit 1 when any number is not prime [%s]\n", def("exit-status"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress prompt and warnings [%s]\n", def("quiet"))
	fmt.Fprintf(out, "      --debug                 Debug logging on stderr [%s]\n", def("debug"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
