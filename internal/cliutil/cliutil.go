// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// LooksNumeric reports whether arg is an optionally signed run of digits,
// so "-5" is read as a number rather than a flag.
func LooksNumeric(arg string) bool {
	s := strings.TrimLeft(arg, "+-")
	if len(s) == 0 || len(arg)-len(s) > 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SplitFlagsAndPositionals separates flag-like args from positionals,
// preserving '--' and '--x=y' semantics. Negative numbers are positionals
// unless they are the value of a preceding non-bool flag.
// Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if LooksNumeric(arg) || !strings.HasPrefix(arg, "-") || arg == "-" {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !boolFlags[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}
