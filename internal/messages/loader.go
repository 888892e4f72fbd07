// internal/messages/loader.go
package messages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLCatalog is the on-disk shape of a catalog override file.
type YAMLCatalog struct {
	Lang     string  `yaml:"lang"`
	Prompt   *string `yaml:"prompt"`
	Prime    string  `yaml:"prime"`
	NotPrime string  `yaml:"not_prime"`
}

// LoadError wraps a failure to read or apply a catalog file.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (path=%s): %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Resolve builds the active catalog. lang overrides the file's lang when set;
// an empty path means built-ins only.
func Resolve(lang, path string) (Catalog, error) {
	if path == "" {
		if lang == "" {
			lang = DefaultLang
		}
		return Builtin(lang)
	}
	return Load(path, lang)
}

// Load reads a YAML catalog and overlays it on the base locale.
func Load(path, lang string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, &LoadError{Op: "messages.load", Path: path, Err: err}
	}

	var dto YAMLCatalog
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Catalog{}, &LoadError{Op: "messages.decode", Path: path, Err: err}
	}

	c, err := Map(dto, lang)
	if err != nil {
		return Catalog{}, &LoadError{Op: "messages.map", Path: path, Err: err}
	}
	return c, nil
}

// Map overlays non-empty DTO fields on the base catalog. An explicit empty
// prompt is kept, which disables prompting.
func Map(dto YAMLCatalog, lang string) (Catalog, error) {
	if lang == "" {
		lang = dto.Lang
	}
	if lang == "" {
		lang = DefaultLang
	}
	c, err := Builtin(lang)
	if err != nil {
		return Catalog{}, err
	}
	if dto.Prompt != nil {
		c.Prompt = *dto.Prompt
	}
	if dto.Prime != "" {
		c.Prime = dto.Prime
	}
	if dto.NotPrime != "" {
		c.NotPrime = dto.NotPrime
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
