// internal/messages/catalog.go
package messages

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Placeholder is replaced by the checked number in result templates.
const Placeholder = "{n}"

const (
	LangVI = "vi"
	LangEN = "en"

	DefaultLang = LangVI
)

var (
	ErrUnknownLang = errors.New("unknown language")
	ErrBadTemplate = errors.New("template must contain " + Placeholder)
)

// Catalog holds the user-facing strings for one locale.
type Catalog struct {
	Lang     string
	Prompt   string
	Prime    string
	NotPrime string
}

var builtin = map[string]Catalog{
	LangVI: {
		Lang:     LangVI,
		Prompt:   "Nhap so n nguyen duong: ",
		Prime:    "{n} la so nguyen to.",
		NotPrime: "{n} khong phai la so nguyen to.",
	},
	LangEN: {
		Lang:     LangEN,
		Prompt:   "Enter a positive integer n: ",
		Prime:    "{n} is a prime number.",
		NotPrime: "{n} is not a prime number.",
	},
}

// Langs lists the built-in locales in sorted order.
func Langs() []string {
	out := make([]string, 0, len(builtin))
	for k := range builtin {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Builtin returns the built-in catalog for lang.
func Builtin(lang string) (Catalog, error) {
	c, ok := builtin[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return Catalog{}, fmt.Errorf("%w %q (want %s)", ErrUnknownLang, lang, strings.Join(Langs(), " | "))
	}
	return c, nil
}

// Default is the Vietnamese catalog.
func Default() Catalog { return builtin[DefaultLang] }

// Validate checks that both result templates carry the placeholder.
func (c Catalog) Validate() error {
	if !strings.Contains(c.Prime, Placeholder) {
		return fmt.Errorf("prime: %w", ErrBadTemplate)
	}
	if !strings.Contains(c.NotPrime, Placeholder) {
		return fmt.Errorf("not_prime: %w", ErrBadTemplate)
	}
	return nil
}

// Result renders the verdict line for n, without a trailing newline.
func (c Catalog) Result(n int64, isPrime bool) string {
	tmpl := c.NotPrime
	if isPrime {
		tmpl = c.Prime
	}
	return strings.ReplaceAll(tmpl, Placeholder, strconv.FormatInt(n, 10))
}
