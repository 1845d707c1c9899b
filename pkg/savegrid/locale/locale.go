// Package locale loads the label tables used by the grid builder and exporters.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed locales/*.toml
var bundleFS embed.FS

// DefaultTag is the locale used when none is configured and as label fallback.
const DefaultTag = "en"

// ErrUnknownLocale indicates that no bundle exists for the requested tag.
var ErrUnknownLocale = errors.New("unknown locale")

// Bundle is the label table of one locale.
type Bundle struct {
	Language string            `toml:"language"`
	Name     string            `toml:"name"`
	Labels   map[string]string `toml:"labels"`

	tag      language.Tag
	printer  *message.Printer
	fallback *Bundle
}

// Available returns the tags of all embedded bundles, sorted.
func Available() []string {
	entries, err := bundleFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	var tags []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".toml") {
			tags = append(tags, strings.TrimSuffix(name, ".toml"))
		}
	}
	sort.Strings(tags)
	return tags
}

// Load returns the bundle for tag (e.g. "es", "es-MX" or "ES").
// Region subtags fall back to the base language bundle.
func Load(tag string) (*Bundle, error) {
	b, err := loadBundle(tag)
	if err != nil {
		return nil, err
	}
	if b.Language != DefaultTag {
		en, err := loadBundle(DefaultTag)
		if err != nil {
			return nil, err
		}
		b.fallback = en
	}
	return b, nil
}

func loadBundle(tag string) (*Bundle, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	base, _ := parsed.Base()

	data, err := bundleFS.ReadFile(path.Join("locales", base.String()+".toml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}

	var b Bundle
	if _, err := toml.Decode(string(data), &b); err != nil {
		return nil, fmt.Errorf("parsing locale %s: %w", base, err)
	}
	b.tag = parsed
	b.printer = message.NewPrinter(parsed)
	return &b, nil
}

// Tag returns the language tag of the bundle.
func (b *Bundle) Tag() language.Tag {
	return b.tag
}

// Label resolves key in this bundle, then in English, then returns the key itself.
func (b *Bundle) Label(key string) string {
	if s, ok := b.Labels[key]; ok && s != "" {
		return s
	}
	if b.fallback != nil {
		return b.fallback.Label(key)
	}
	return key
}

// FormatNumber formats v with the locale's grouping and decimal separators,
// keeping at most two fraction digits.
func (b *Bundle) FormatNumber(v float64) string {
	return b.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
